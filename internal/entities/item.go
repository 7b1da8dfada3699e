package entities

// Item identifies a piece of gear or loot. Inventory keeps items in the
// order they were acquired and allows duplicates.
type Item string

const (
	ItemStandardRifle  Item = "Standard Rifle"
	ItemCombatKnife    Item = "Combat Knife"
	ItemSniperRifle    Item = "Sniper Rifle"
	ItemCamouflage     Item = "Camouflage"
	ItemPistol         Item = "Pistol"
	ItemMedicalKit     Item = "Medical Kit"
	ItemToolkit        Item = "Toolkit"
	ItemSilencedPistol Item = "Silenced Pistol"
	ItemEncryptedRadio Item = "Encrypted Radio"
	ItemMedPack        Item = "Med Pack"
	ItemAmmo           Item = "Ammo"
	ItemRations        Item = "Rations"
	ItemIEDComponents  Item = "IED Components"
	ItemAssaultRifle   Item = "Assault Rifle"
	ItemHandfulOfAmmo  Item = "Handful of Ammo"
	ItemIntelDocuments Item = "Intel Documents"
	ItemLootedSupplies Item = "Looted Supplies"
)
