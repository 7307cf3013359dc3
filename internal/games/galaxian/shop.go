package galaxian

// ItemID names a shop catalog entry.
type ItemID string

const (
	ItemRapidFire      ItemID = "rapid_fire"
	ItemThrusters      ItemID = "thrusters"
	ItemSpreadShot     ItemID = "spread_shot"
	ItemPiercingRounds ItemID = "piercing_rounds"
	ItemHullPlating    ItemID = "hull_plating"
	ItemExtraLife      ItemID = "extra_life"
	ItemDrone          ItemID = "drone"
	ItemInfiniteLives  ItemID = "infinite_lives"
	ItemDoubleXP       ItemID = "double_xp"
)

// Power names a timed consumable.
type Power int

const (
	PowerInfLives Power = iota
	PowerDoubleXP
)

// ShopItem is one catalog row annotated for the current state.
type ShopItem struct {
	ID          ItemID `json:"id"`
	Name        string `json:"name"`
	Cost        int    `json:"cost"`
	Level       int    `json:"level"`
	MaxLevel    *int   `json:"maxLevel"` // nil for consumable charges
	Description string `json:"description"`
	Affordable  bool   `json:"affordable"`
}

// unlimited marks consumable charges that have no level cap.
const unlimited = -1

type shopEntry struct {
	id          ItemID
	name        string
	description string
	maxLevel    int
	baseCost    int
	costStep    int
	level       func(*State) int
	apply       func(*State)
}

func (e shopEntry) cost(level int) int {
	return e.baseCost + e.costStep*level
}

func (e shopEntry) capped(level int) bool {
	return e.maxLevel != unlimited && level >= e.maxLevel
}

// catalog order is the order of shop rows and therefore of buy indices.
var catalog = [...]shopEntry{
	{
		id:          ItemRapidFire,
		name:        "Rapid Fire",
		description: "Shorter cooldown between shots",
		maxLevel:    5,
		baseCost:    120,
		costStep:    90,
		level:       func(s *State) int { return s.Upgrades.RapidFire },
		apply:       func(s *State) { s.Upgrades.RapidFire++ },
	},
	{
		id:          ItemThrusters,
		name:        "Thrusters",
		description: "Faster ship movement",
		maxLevel:    4,
		baseCost:    100,
		costStep:    80,
		level:       func(s *State) int { return s.Upgrades.Thrusters },
		apply: func(s *State) {
			s.Upgrades.Thrusters++
			s.Player.Speed = s.cfg.Player.Speed + s.cfg.Player.ThrusterStep*float64(s.Upgrades.Thrusters)
		},
	},
	{
		id:          ItemSpreadShot,
		name:        "Spread Shot",
		description: "Two extra angled shots per level",
		maxLevel:    2,
		baseCost:    260,
		costStep:    220,
		level:       func(s *State) int { return s.Upgrades.SpreadShot },
		apply:       func(s *State) { s.Upgrades.SpreadShot++ },
	},
	{
		id:          ItemPiercingRounds,
		name:        "Piercing Rounds",
		description: "Bullets pass through one more enemy",
		maxLevel:    3,
		baseCost:    220,
		costStep:    180,
		level:       func(s *State) int { return s.Upgrades.Pierce },
		apply:       func(s *State) { s.Upgrades.Pierce++ },
	},
	{
		id:          ItemHullPlating,
		name:        "Hull Plating",
		description: "Longer invulnerability after a hit",
		maxLevel:    4,
		baseCost:    150,
		costStep:    110,
		level:       func(s *State) int { return s.Upgrades.HullPlating },
		apply:       func(s *State) { s.Upgrades.HullPlating++ },
	},
	{
		id:          ItemExtraLife,
		name:        "Extra Life",
		description: "+1 max life and heal 1",
		maxLevel:    3,
		baseCost:    300,
		costStep:    250,
		level:       func(s *State) int { return s.Upgrades.ExtraLifeCap },
		apply: func(s *State) {
			s.Upgrades.ExtraLifeCap++
			s.MaxLives = s.cfg.Player.StartLives + s.Upgrades.ExtraLifeCap
			s.Lives = min(s.MaxLives, s.Lives+1)
		},
	},
	{
		id:          ItemDrone,
		name:        "Escort Drone",
		description: "Wingman that fires at random targets",
		maxLevel:    1,
		baseCost:    650,
		costStep:    400,
		level:       func(s *State) int { return s.Upgrades.Drone },
		apply: func(s *State) {
			s.Upgrades.Drone = 1
			s.Drone = Drone{
				Active:   true,
				X:        s.Player.X + droneOffsetX,
				Y:        s.Player.Y + droneOffsetY,
				Cooldown: s.cfg.Weapons.DroneCooldown,
			}
		},
	},
	{
		id:          ItemInfiniteLives,
		name:        "Infinity Lives",
		description: "Charge: 10s without losing lives (E)",
		maxLevel:    unlimited,
		baseCost:    180,
		costStep:    60,
		level:       func(s *State) int { return s.Inventory.InfLivesCharges },
		apply:       func(s *State) { s.Inventory.InfLivesCharges++ },
	},
	{
		id:          ItemDoubleXP,
		name:        "Double XP",
		description: "Charge: 16s of doubled XP (Q)",
		maxLevel:    unlimited,
		baseCost:    140,
		costStep:    50,
		level:       func(s *State) int { return s.Inventory.DoubleXPCharges },
		apply:       func(s *State) { s.Inventory.DoubleXPCharges++ },
	},
}

// ListItems returns the catalog annotated with cost and affordability.
// It never mutates the state.
func ListItems(s *State) []ShopItem {
	items := make([]ShopItem, 0, len(catalog))
	for _, e := range catalog {
		level := e.level(s)
		cost := e.cost(level)

		var maxLevel *int
		if e.maxLevel != unlimited {
			m := e.maxLevel
			maxLevel = &m
		}

		items = append(items, ShopItem{
			ID:          e.id,
			Name:        e.name,
			Cost:        cost,
			Level:       level,
			MaxLevel:    maxLevel,
			Description: e.description,
			Affordable:  s.Credits >= cost && !e.capped(level),
		})
	}
	return items
}

// Purchase buys one level of an item. It reports false and leaves the state
// untouched outside intermission, for unknown ids, at the cap, or when the
// player cannot afford it.
func Purchase(s *State, id ItemID) bool {
	if s.Mode != ModeIntermission {
		return false
	}

	for _, e := range catalog {
		if e.id != id {
			continue
		}
		level := e.level(s)
		cost := e.cost(level)
		if e.capped(level) || s.Credits < cost {
			return false
		}
		s.Credits -= cost
		e.apply(s)
		return true
	}
	return false
}

// purchaseAt resolves a buy index against the current catalog. Out-of-range
// indices are ignored.
func (s *State) purchaseAt(index int) bool {
	items := ListItems(s)
	if index < 0 || index >= len(items) {
		return false
	}
	return Purchase(s, items[index].ID)
}

// ActivatePower spends one charge and starts its timer. Activation fails without a
// charge or while the same timer is still running.
func ActivatePower(s *State, p Power) bool {
	switch p {
	case PowerInfLives:
		if s.Inventory.InfLivesCharges <= 0 || s.Timers.InfLives > 0 {
			return false
		}
		s.Inventory.InfLivesCharges--
		s.Timers.InfLives = infLivesDuration
		return true
	case PowerDoubleXP:
		if s.Inventory.DoubleXPCharges <= 0 || s.Timers.DoubleXP > 0 {
			return false
		}
		s.Inventory.DoubleXPCharges--
		s.Timers.DoubleXP = doubleXPDuration
		return true
	default:
		return false
	}
}

// tickPowers counts consumable timers down, clamping at zero.
func (s *State) tickPowers(dt float64) {
	if s.Timers.InfLives > 0 {
		s.Timers.InfLives = max(0, s.Timers.InfLives-dt)
	}
	if s.Timers.DoubleXP > 0 {
		s.Timers.DoubleXP = max(0, s.Timers.DoubleXP-dt)
	}
}

// awardXP adds experience, doubled while the double-xp timer runs.
func (s *State) awardXP(amount int) {
	if s.Timers.DoubleXP > 0 {
		amount *= 2
	}
	s.XP += amount
}
