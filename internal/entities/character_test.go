package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wartrail/wartrail/internal/entities"
)

func newCharacter(t *testing.T, id entities.RoleID) *entities.Character {
	t.Helper()
	role, ok := entities.RoleByID(id)
	require.True(t, ok)
	return entities.NewCharacter("char-1", "Alpha", role)
}

func TestNewCharacter_Defaults(t *testing.T) {
	char := newCharacter(t, entities.RoleSoldier)

	assert.Equal(t, entities.MaxHP, char.HP)
	assert.True(t, char.IsAlive())
	assert.Equal(t, 0, char.AccuracyBonus)
	assert.Equal(t, 0, char.HealCharges)
	assert.False(t, char.SniperShotUsed)
	assert.Equal(t, 0, char.MissionsCompleted)
	assert.Equal(t, []entities.Item{entities.ItemStandardRifle, entities.ItemCombatKnife}, char.Inventory)
}

func TestNewCharacter_MedicGetsOneHealCharge(t *testing.T) {
	medic := newCharacter(t, entities.RoleMedic)
	assert.Equal(t, 1, medic.HealCharges)

	sniper := newCharacter(t, entities.RoleSniper)
	assert.Equal(t, 0, sniper.HealCharges)
	assert.Equal(t, 15, sniper.AccuracyBonus)
}

func TestNewCharacter_GearIsCopied(t *testing.T) {
	char := newCharacter(t, entities.RoleSoldier)
	char.Inventory[0] = entities.ItemMedPack

	role, _ := entities.RoleByID(entities.RoleSoldier)
	assert.Equal(t, entities.ItemStandardRifle, role.StartingGear[0])
}

func TestCharacter_TakeDamageKillsAtZero(t *testing.T) {
	char := newCharacter(t, entities.RoleSoldier)

	char.TakeDamage(1)
	assert.Equal(t, 2, char.HP)
	assert.True(t, char.IsAlive())

	char.TakeDamage(1)
	char.TakeDamage(1)
	assert.Equal(t, 0, char.HP)
	assert.False(t, char.IsAlive())
}

func TestCharacter_DisplayHPNeverNegative(t *testing.T) {
	char := newCharacter(t, entities.RoleSoldier)
	char.TakeDamage(5)

	assert.Equal(t, -2, char.HP)
	assert.Equal(t, 0, char.DisplayHP())
	assert.False(t, char.IsAlive())
}

func TestCharacter_HealClampsAtMax(t *testing.T) {
	char := newCharacter(t, entities.RoleMedic)
	char.TakeDamage(1)

	char.Heal(1)
	assert.Equal(t, entities.MaxHP, char.HP)

	char.Heal(1)
	assert.Equal(t, entities.MaxHP, char.HP)
}

func TestCharacter_DeathIsMonotonic(t *testing.T) {
	char := newCharacter(t, entities.RoleMedic)
	char.TakeDamage(3)
	require.False(t, char.IsAlive())

	char.Heal(2)
	assert.False(t, char.IsAlive())
	assert.Equal(t, 0, char.HP)

	killed := newCharacter(t, entities.RoleSoldier)
	killed.Kill()
	killed.Heal(1)
	assert.False(t, killed.IsAlive())
}

func TestCharacter_KillBypassesHP(t *testing.T) {
	char := newCharacter(t, entities.RoleSoldier)
	char.Kill()

	assert.False(t, char.IsAlive())
	assert.Equal(t, entities.MaxHP, char.HP)
}

func TestCharacter_ItemHandling(t *testing.T) {
	char := newCharacter(t, entities.RoleEngineer)
	require.False(t, char.HasItem(entities.ItemMedPack))

	// Duplicates are appended, never deduplicated
	char.AddItem(entities.ItemMedPack)
	char.AddItem(entities.ItemMedPack)
	assert.True(t, char.HasItem(entities.ItemMedPack))
	assert.Len(t, char.Inventory, 4)

	// Consuming removes exactly one
	assert.True(t, char.RemoveItem(entities.ItemMedPack))
	assert.True(t, char.HasItem(entities.ItemMedPack))
	assert.True(t, char.RemoveItem(entities.ItemMedPack))
	assert.False(t, char.HasItem(entities.ItemMedPack))
	assert.False(t, char.RemoveItem(entities.ItemMedPack))
}

func TestCharacter_UseHealChargeAtMostOnce(t *testing.T) {
	medic := newCharacter(t, entities.RoleMedic)

	assert.True(t, medic.UseHealCharge())
	assert.Equal(t, 0, medic.HealCharges)
	assert.False(t, medic.UseHealCharge())
	assert.Equal(t, 0, medic.HealCharges)

	soldier := newCharacter(t, entities.RoleSoldier)
	assert.False(t, soldier.UseHealCharge())
}

func TestCharacter_StatusLine(t *testing.T) {
	char := newCharacter(t, entities.RoleSniper)
	char.TakeDamage(5)

	line := char.StatusLine()
	assert.Contains(t, line, "Alpha the Sniper")
	assert.Contains(t, line, "HP: 0")
	assert.Contains(t, line, "Sniper Rifle, Camouflage")
}
