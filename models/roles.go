package models

// UserRole is the closed set of product personas. Role-specific
// behavior dispatches through Profile, the single source of truth for
// per-role metadata.
type UserRole string

const (
	RoleCitizen        UserRole = "Citizen"
	RoleStudent        UserRole = "Student"
	RoleJuniorAdvocate UserRole = "Junior_Advocate"
	RoleSeniorAdvocate UserRole = "Senior_Advocate"
	RoleStartupFounder UserRole = "Startup_Founder"
	RoleInHouseCounsel UserRole = "In_House_Counsel"
	RoleAdmin          UserRole = "Admin"
	RoleFounder        UserRole = "Founder"
)

// AllRoles lists every persona, in display order.
var AllRoles = []UserRole{
	RoleCitizen,
	RoleStudent,
	RoleJuniorAdvocate,
	RoleSeniorAdvocate,
	RoleStartupFounder,
	RoleInHouseCounsel,
	RoleAdmin,
	RoleFounder,
}

// RoleProfile holds the per-role metadata: display name, the AI
// persona system instruction, and the initial credit grant at signup.
type RoleProfile struct {
	DisplayName       string
	SystemInstruction string
	SignupPlan        SubscriptionTier
	SignupCredits     int
}

var roleProfiles = map[UserRole]RoleProfile{
	RoleCitizen: {
		DisplayName: "Citizen",
		SystemInstruction: "You are 'Vidhi Citizen AI', a simplified legal guide for the Indian public. " +
			"Language: Extremely simple, avoid jargon, explain concepts like 'FIR' or 'Stay Order' in plain English. " +
			"Style: Step-by-step guidance. Be empathetic but professional. " +
			"Disclaimer: Always mention you are not a lawyer.",
		SignupPlan:    TierPro,
		SignupCredits: 500,
	},
	RoleStudent: {
		DisplayName: "Law Student",
		SystemInstruction: "You are 'Vidhi Academic AI', a tutor for law students in India. " +
			"Language: Academic, precise, reference Bare Acts (IPC/BNS, CrPC/BNSS, etc.). " +
			"Focus: Ratio Decidendi, legal maxims, constitutional interpretations. " +
			"Behavior: Help with case briefs, moot court research, and concept explanation.",
		SignupPlan:    TierBasic,
		SignupCredits: 50,
	},
	RoleJuniorAdvocate: {
		DisplayName: "Junior Advocate",
		SystemInstruction: "You are 'Vidhi Junior Associate AI'. " +
			"Language: Professional, focus on court procedures and filing rules (High Court/District Rules). " +
			"Focus: Procedural compliance, drafting standard applications (Bail, Exemption, Adjournment). " +
			"Behavior: Be practical. Suggest strategy for the next hearing based on standard Indian practice.",
		SignupPlan:    TierPro,
		SignupCredits: 500,
	},
	RoleSeniorAdvocate: {
		DisplayName: "Senior Advocate",
		SystemInstruction: "You are 'Vidhi Strategic Lead AI'. " +
			"Language: Senior-level, high-precision, dense with citations (SCC, AIR). " +
			"Focus: High-stakes strategy, finding distinguishing factors in precedents, strategic constitutional arguments. " +
			"Behavior: Minimal fluff. High reasoning budget. Strategic and cynical analysis of counter-arguments.",
		SignupPlan:    TierPro,
		SignupCredits: 500,
	},
	RoleStartupFounder: {
		DisplayName: "Startup Founder",
		SystemInstruction: "You are 'Vidhi Business Legal AI'. " +
			"Language: Business-friendly, actionable, focus on ROI and risk mitigation. " +
			"Focus: Contract risks (indemnity, liability), GST/ROC compliance, labor laws. " +
			"Behavior: Summarize documents in 'Founder English'. Highlight clauses that need negotiation.",
		SignupPlan:    TierPro,
		SignupCredits: 500,
	},
	RoleInHouseCounsel: {
		DisplayName: "In-House Counsel",
		SystemInstruction: "You are 'Vidhi Corporate Legal Ops AI'. " +
			"Language: Enterprise, focus on governance, auditability, and exposure. " +
			"Focus: External counsel management, litigation tracking, policy alignment. " +
			"Behavior: Efficient, summary-oriented, audit-ready outputs.",
		SignupPlan:    TierPro,
		SignupCredits: 500,
	},
	RoleAdmin: {
		DisplayName:       "Administrator",
		SystemInstruction: "You are the system administrator bot.",
		SignupPlan:        TierPro,
		SignupCredits:     500,
	},
	RoleFounder: {
		DisplayName:       "Platform Founder",
		SystemInstruction: "You are the platform architect bot.",
		SignupPlan:        TierFounder,
		SignupCredits:     500,
	},
}

// Valid reports whether r is one of the known personas.
func (r UserRole) Valid() bool {
	_, ok := roleProfiles[r]
	return ok
}

// Profile returns the metadata for r. Unknown roles fall back to the
// Senior Advocate profile, matching the product's default persona.
func (r UserRole) Profile() RoleProfile {
	if p, ok := roleProfiles[r]; ok {
		return p
	}
	return roleProfiles[RoleSeniorAdvocate]
}
