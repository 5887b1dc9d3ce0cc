package player

import (
	"github.com/df-mc/dragonfly/server/item"
	"github.com/oomph-ac/playersim/game"
)

const (
	// ItemValueUseAnimation is the key of the item.Stack value holding the animation played while the item
	// is used.
	ItemValueUseAnimation = "use_animation"
	// ItemValueHitAnimation is the key of the value holding the animation played when hitting with the item.
	ItemValueHitAnimation = "hit_animation"
	// ItemValueIdleAnimation is the key of the value holding the animation played while the item is held.
	ItemValueIdleAnimation = "idle_animation"

	backpackSize = 36
)

// Inventory holds the items of a player.
type Inventory struct {
	rightHand, leftHand item.Stack
	backpack            [backpackSize]item.Stack
	armour              [4]item.Stack
}

// RightHand returns the item held in the right hand.
func (inv *Inventory) RightHand() item.Stack {
	return inv.rightHand
}

// LeftHand returns the item held in the left hand.
func (inv *Inventory) LeftHand() item.Stack {
	return inv.leftHand
}

// SetRightHand sets the item held in the right hand.
func (inv *Inventory) SetRightHand(s item.Stack) {
	inv.rightHand = s
}

// SetLeftHand sets the item held in the left hand.
func (inv *Inventory) SetLeftHand(s item.Stack) {
	inv.leftHand = s
}

// SetArmour sets the item in one of the four gear slots.
func (inv *Inventory) SetArmour(slot int, s item.Stack) {
	if slot < 0 || slot >= len(inv.armour) {
		return
	}
	inv.armour[slot] = s
}

// Armour returns the items in the gear slots.
func (inv *Inventory) Armour() [4]item.Stack {
	return inv.armour
}

// AddItem puts an item in the first empty backpack slot. It returns false if the backpack is full.
func (inv *Inventory) AddItem(s item.Stack) bool {
	for i, existing := range inv.backpack {
		if existing.Empty() {
			inv.backpack[i] = s
			return true
		}
	}
	return false
}

// Items returns all non-empty items held in the hands and the backpack.
func (inv *Inventory) Items() []item.Stack {
	items := make([]item.Stack, 0, 4)
	for _, s := range append([]item.Stack{inv.rightHand, inv.leftHand}, inv.backpack[:]...) {
		if !s.Empty() {
			items = append(items, s)
		}
	}
	return items
}

// Clear empties the hands and the backpack, returning the items removed. Gear slots are left untouched.
func (inv *Inventory) Clear() []item.Stack {
	items := inv.Items()
	inv.rightHand, inv.leftHand = item.Stack{}, item.Stack{}
	inv.backpack = [backpackSize]item.Stack{}
	return items
}

// ClearProtectiveGear empties the gear slots that hold protective gear, returning the items removed.
func (inv *Inventory) ClearProtectiveGear() []item.Stack {
	var items []item.Stack
	for i, s := range inv.armour {
		if s.Empty() {
			continue
		}
		if _, ok := s.Item().(item.Armour); !ok {
			continue
		}
		items = append(items, s)
		inv.armour[i] = item.Stack{}
	}
	return items
}

// HeldAnimations returns the animations played with the item passed: while it is used, when hitting with it
// and while it is held. An empty hand uses the unarmed animations. Items without an animation for an action
// return an empty code for it.
func HeldAnimations(s item.Stack) (use, hit, idle string) {
	if s.Empty() {
		return game.AnimationInteract, game.AnimationBreakHand, ""
	}
	return stackString(s, ItemValueUseAnimation), stackString(s, ItemValueHitAnimation), stackString(s, ItemValueIdleAnimation)
}

func stackString(s item.Stack, key string) string {
	v, ok := s.Value(key)
	if !ok {
		return ""
	}
	str, _ := v.(string)
	return str
}
