package catalog

import "github.com/akorchagin/procsim/internal/domain"

// scenarios is the built-in catalog. Briefs are markdown shown to the user;
// personas are hidden and only ever reach the counterparty model.
var scenarios = []domain.Scenario{
	{
		ID:            1,
		Title:         "EPC Steel Variation Claim",
		Category:      "Construction",
		Difficulty:    domain.DifficultyHard,
		UserBrief:     "**Role:** Project Director.\n**Situation:** Contractor claims $5M for steel price hikes.\n**Goal:** Reject hike.",
		SystemPersona: "**Role:** Contractor PM.\n**Motivation:** Needs cash for liquidity.",
	},
	{
		ID:            2,
		Title:         "Camp Construction Delay",
		Category:      "Construction",
		Difficulty:    domain.DifficultyMedium,
		UserBrief:     "**Role:** Site Mgr.\n**Situation:** Delivery delayed 2 months.\n**Goal:** Demand acceleration.",
		SystemPersona: "**Role:** Construction Lead.\n**Motivation:** Weather delay (FM). Won't pay acceleration.",
	},
	{
		ID:            3,
		Title:         "Deepwater Rig Rate",
		Category:      "Drilling",
		Difficulty:    domain.DifficultyMedium,
		UserBrief:     "**Role:** Wells Lead.\n**Situation:** Oil down. Rates down 30%.\n**Goal:** -20% rate. 1yr extension.",
		SystemPersona: "**Role:** Rig Contractor.\n**Motivation:** Terrified of stacking rig.",
	},
	{
		ID:            4,
		Title:         "FPSO Termination Threat",
		Category:      "Production",
		Difficulty:    domain.DifficultyExpert,
		UserBrief:     "**Role:** Asset Mgr.\n**Situation:** 85% uptime.\n**Goal:** Remedial plan or Default Notice.",
		SystemPersona: "**Role:** FPSO Operator.\n**Motivation:** Parts stuck in customs.",
	},
	{
		ID:            5,
		Title:         "SaaS Renewal Hike",
		Category:      "IT",
		Difficulty:    domain.DifficultyMedium,
		UserBrief:     "**Role:** IT Buyer.\n**Situation:** +15% hike.\n**Goal:** Cap at 3%. No auto-renewal.",
		SystemPersona: "**Role:** Sales VP.\n**Motivation:** Needs quarterly target.",
	},
	{
		ID:            6,
		Title:         "Software License Audit",
		Category:      "IT",
		Difficulty:    domain.DifficultyHard,
		UserBrief:     "**Role:** CIO.\n**Situation:** $2M penalty claim.\n**Goal:** Settle <$200k.",
		SystemPersona: "**Role:** Auditor.\n**Motivation:** Bonus tied to penalty size.",
	},
	{
		ID:            7,
		Title:         "Data Breach Compensation",
		Category:      "IT",
		Difficulty:    domain.DifficultyExpert,
		UserBrief:     "**Role:** Legal.\n**Situation:** Data leak.\n**Goal:** 1yr free service + monitoring.",
		SystemPersona: "**Role:** Cloud Provider.\n**Motivation:** Limit liability to 1 month fees.",
	},
	{
		ID:            8,
		Title:         "Logistics Demurrage",
		Category:      "Logistics",
		Difficulty:    domain.DifficultyEasy,
		UserBrief:     "**Role:** Logistics Supt.\n**Situation:** 3 day delay. $50k claim.\n**Goal:** Pay $0.",
		SystemPersona: "**Role:** Shipowner.\n**Motivation:** Needs cash for fuel.",
	},
	{
		ID:            9,
		Title:         "Helicopter Fuel Surcharge",
		Category:      "Logistics",
		Difficulty:    domain.DifficultyMedium,
		UserBrief:     "**Role:** Category Lead.\n**Situation:** +10% fuel surcharge.\n**Goal:** Floating mechanism only.",
		SystemPersona: "**Role:** Heli Operator.\n**Motivation:** Zero margin without hike.",
	},
	{
		ID:            10,
		Title:         "Warehousing Exclusivity",
		Category:      "Logistics",
		Difficulty:    domain.DifficultyEasy,
		UserBrief:     "**Role:** Supply Mgr.\n**Situation:** Owner wants 5yr exclusive.\n**Goal:** 2yr non-exclusive.",
		SystemPersona: "**Role:** Owner.\n**Motivation:** Needs lease for bank loan.",
	},
	{
		ID:            11,
		Title:         "Consultancy Rate Hike",
		Category:      "Corporate",
		Difficulty:    domain.DifficultyMedium,
		UserBrief:     "**Role:** HR Director.\n**Situation:** +10% rate ask.\n**Goal:** Flat rates.",
		SystemPersona: "**Role:** Partner.\n**Motivation:** Salary inflation high.",
	},
	{
		ID:            12,
		Title:         "Office Lease Renewal",
		Category:      "Real Estate",
		Difficulty:    domain.DifficultyHard,
		UserBrief:     "**Role:** Facilities Mgr.\n**Situation:** +20% rent ask.\n**Goal:** Flat or move.",
		SystemPersona: "**Role:** Landlord.\n**Motivation:** Bluffing about other tenant.",
	},
	{
		ID:            13,
		Title:         "Travel Agency Rebate",
		Category:      "Corporate",
		Difficulty:    domain.DifficultyEasy,
		UserBrief:     "**Role:** Procurement Lead.\n**Situation:** New Agency.\n**Goal:** 3% rebate.",
		SystemPersona: "**Role:** Agency Rep.\n**Motivation:** Thin margins. 1% max.",
	},
	{
		ID:            14,
		Title:         "Pollution Liability Cap",
		Category:      "Legal",
		Difficulty:    domain.DifficultyHard,
		UserBrief:     "**Role:** Counsel.\n**Situation:** Wants $5M cap.\n**Goal:** Unlimited or $50M.",
		SystemPersona: "**Role:** Owner.\n**Motivation:** Insurance limit is $10M.",
	},
	{
		ID:            15,
		Title:         "JV Partner Approval",
		Category:      "Governance",
		Difficulty:    domain.DifficultyHard,
		UserBrief:     "**Role:** Asset Mgr.\n**Situation:** Sole-source $2M.\n**Goal:** Partner approval.",
		SystemPersona: "**Role:** Partner.\n**Motivation:** Suspects gold-plating.",
	},
	{
		ID:            16,
		Title:         "Force Majeure Claim",
		Category:      "Legal",
		Difficulty:    domain.DifficultyExpert,
		UserBrief:     "**Role:** Contract Mgr.\n**Situation:** Supplier declares FM (Storm).\n**Goal:** Reject FM.",
		SystemPersona: "**Role:** Supplier.\n**Motivation:** Factory damaged.",
	},
	{
		ID:            17,
		Title:         "IP Ownership Dispute",
		Category:      "R&D",
		Difficulty:    domain.DifficultyHard,
		UserBrief:     "**Role:** R&D Lead.\n**Situation:** Joint dev.\n**Goal:** We own IP.",
		SystemPersona: "**Role:** Startup CEO.\n**Motivation:** IP is only asset.",
	},
	{
		ID:            18,
		Title:         "Local Content Quota",
		Category:      "ESG",
		Difficulty:    domain.DifficultyMedium,
		UserBrief:     "**Role:** Content Mgr.\n**Situation:** 40% mandate.\n**Goal:** Enforce target.",
		SystemPersona: "**Role:** Supplier.\n**Motivation:** Locals untrained.",
	},
	{
		ID:            19,
		Title:         "HSE Incident Reporting",
		Category:      "HSE",
		Difficulty:    domain.DifficultyMedium,
		UserBrief:     "**Role:** HSE Mgr.\n**Situation:** Hidden Near Miss.\n**Goal:** Reset bonus.",
		SystemPersona: "**Role:** Supervisor.\n**Motivation:** Protecting crew bonus.",
	},
	{
		ID:            20,
		Title:         "Green Energy Premium",
		Category:      "ESG",
		Difficulty:    domain.DifficultyMedium,
		UserBrief:     "**Role:** Power Buyer.\n**Situation:** Buying renewable.\n**Goal:** <5% premium.",
		SystemPersona: "**Role:** Generator.\n**Motivation:** High demand.",
	},
}
