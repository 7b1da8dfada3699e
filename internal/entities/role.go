package entities

// RoleID identifies a playable archetype
type RoleID string

const (
	RoleSoldier  RoleID = "soldier"
	RoleSniper   RoleID = "sniper"
	RoleMedic    RoleID = "medic"
	RoleEngineer RoleID = "engineer"
	RoleIntel    RoleID = "intelligence_officer"
)

// Ability identifies a role's unique special ability
type Ability string

const (
	// AbilityDodge gives a flat chance to avoid incoming fire in combat
	AbilityDodge Ability = "dodge"

	// AbilityGuaranteedShot kills the enemy outright, once per run
	AbilityGuaranteedShot Ability = "guaranteed_shot"

	// AbilityFieldHeal restores 1 HP mid-fight, once per run
	AbilityFieldHeal Ability = "field_heal"

	// AbilityDisarm improves the odds against traps and explosives
	AbilityDisarm Ability = "disarm"

	// AbilityIntel grants advance knowledge on risky routes
	AbilityIntel Ability = "intel"
)

// Role is an immutable playable archetype. The catalog is closed: these
// five are the only roles the game knows.
type Role struct {
	ID            RoleID
	Name          string
	Description   string
	StartingGear  []Item
	AccuracyBonus int
	Ability       Ability
	AbilityDesc   string
}

var roleCatalog = []*Role{
	{
		ID:            RoleSoldier,
		Name:          "Soldier",
		Description:   "All-rounder. Balanced in combat and survival.",
		StartingGear:  []Item{ItemStandardRifle, ItemCombatKnife},
		AccuracyBonus: 0,
		Ability:       AbilityDodge,
		AbilityDesc:   "Steady: small chance to dodge incoming fire.",
	},
	{
		ID:            RoleSniper,
		Name:          "Sniper",
		Description:   "Long-range specialist. Very accurate at range.",
		StartingGear:  []Item{ItemSniperRifle, ItemCamouflage},
		AccuracyBonus: 15,
		Ability:       AbilityGuaranteedShot,
		AbilityDesc:   "One-time guaranteed long-range shot (high accuracy).",
	},
	{
		ID:            RoleMedic,
		Name:          "Medic",
		Description:   "Healer. Can heal themselves once per mission.",
		StartingGear:  []Item{ItemPistol, ItemMedicalKit},
		AccuracyBonus: -5,
		Ability:       AbilityFieldHeal,
		AbilityDesc:   "Field Heal: restore 1 HP once per mission.",
	},
	{
		ID:            RoleEngineer,
		Name:          "Engineer",
		Description:   "Handles traps and gadgets. Can disable explosives.",
		StartingGear:  []Item{ItemPistol, ItemToolkit},
		AccuracyBonus: -2,
		Ability:       AbilityDisarm,
		AbilityDesc:   "Disarm: chance to avoid traps and ambushes.",
	},
	{
		ID:            RoleIntel,
		Name:          "Intelligence Officer",
		Description:   "Information & stealth expert. Gains intel before risky choices.",
		StartingGear:  []Item{ItemSilencedPistol, ItemEncryptedRadio},
		AccuracyBonus: -1,
		Ability:       AbilityIntel,
		AbilityDesc:   "Intel: occasional hints about the safest route.",
	},
}

// Roles returns the full role catalog in selection order. Callers must
// treat the returned roles as read-only.
func Roles() []*Role {
	return roleCatalog
}

// RoleByID looks up a role in the catalog
func RoleByID(id RoleID) (*Role, bool) {
	for _, role := range roleCatalog {
		if role.ID == id {
			return role, true
		}
	}
	return nil, false
}
