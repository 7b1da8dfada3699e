package entities

import (
	"fmt"
	"strings"
)

// MaxHP is the health cap for every character
const MaxHP = 3

// Character is the single mutable record for one run. It is created once
// at run start, mutated through every encounter and combat, and discarded
// after the summary. The engine is strictly sequential, so there is no
// locking here.
type Character struct {
	ID            string
	Name          string
	Role          *Role
	HP            int
	Inventory     []Item
	AccuracyBonus int

	// HealCharges is the Medic's once-per-run field heal. Other roles
	// start with zero.
	HealCharges int

	// SniperShotUsed marks the Sniper's once-per-run guaranteed shot.
	SniperShotUsed bool

	MissionsCompleted int

	dead bool
}

// NewCharacter builds a fresh character from a role. Starting gear is
// copied so the catalog entry is never mutated.
func NewCharacter(id, name string, role *Role) *Character {
	c := &Character{
		ID:            id,
		Name:          name,
		Role:          role,
		HP:            MaxHP,
		Inventory:     append([]Item(nil), role.StartingGear...),
		AccuracyBonus: role.AccuracyBonus,
	}
	if role.Ability == AbilityFieldHeal {
		c.HealCharges = 1
	}
	return c
}

// IsAlive reports whether the character can still act
func (c *Character) IsAlive() bool {
	return !c.dead
}

// TakeDamage reduces HP and marks the character dead at zero or below.
// HP may go negative internally; DisplayHP clamps it for reporting.
func (c *Character) TakeDamage(amount int) {
	c.HP -= amount
	if c.HP <= 0 {
		c.dead = true
	}
}

// Kill marks the character dead immediately, bypassing HP accounting.
// Death is permanent; nothing un-sets it.
func (c *Character) Kill() {
	c.dead = true
}

// Heal restores HP up to the cap. Healing never resurrects.
func (c *Character) Heal(amount int) {
	if c.dead {
		return
	}
	c.HP += amount
	if c.HP > MaxHP {
		c.HP = MaxHP
	}
}

// UseHealCharge consumes one field-heal charge if any remain
func (c *Character) UseHealCharge() bool {
	if c.HealCharges <= 0 {
		return false
	}
	c.HealCharges--
	return true
}

// DisplayHP is the HP value shown to the player, never negative
func (c *Character) DisplayHP() int {
	if c.HP < 0 {
		return 0
	}
	return c.HP
}

// HasItem reports whether at least one of the given item is held
func (c *Character) HasItem(item Item) bool {
	for _, held := range c.Inventory {
		if held == item {
			return true
		}
	}
	return false
}

// AddItem appends an item to the inventory; duplicates are kept
func (c *Character) AddItem(item Item) {
	c.Inventory = append(c.Inventory, item)
}

// RemoveItem removes the first occurrence of the item and reports whether
// anything was removed
func (c *Character) RemoveItem(item Item) bool {
	for i, held := range c.Inventory {
		if held == item {
			c.Inventory = append(c.Inventory[:i], c.Inventory[i+1:]...)
			return true
		}
	}
	return false
}

// InventoryLine renders the inventory for display
func (c *Character) InventoryLine() string {
	names := make([]string, len(c.Inventory))
	for i, item := range c.Inventory {
		names[i] = string(item)
	}
	return strings.Join(names, ", ")
}

// StatusLine renders the one-line status shown at the top of each combat
// round
func (c *Character) StatusLine() string {
	return fmt.Sprintf("%s the %s — HP: %d — Inventory: [%s]",
		c.Name, c.Role.Name, c.DisplayHP(), c.InventoryLine())
}
