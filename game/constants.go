package game

const (
	FloorSitEyeMultiplier = float32(0.5)
	FloorSitBoxMultiplier = float32(0.55)
	SneakEyeMultiplier    = float32(0.8)
	SneakBoxMultiplier    = float32(0.8)
	DeadEyeMultiplier     = float32(0.25)
	DeadBoxMultiplier     = float32(0.25)

	// PostureApproachRate is the rate at which eye height and box height move towards their target.
	PostureApproachRate = float32(5)

	DefaultEyeHeight       = float32(1.7)
	DefaultCollisionWidth  = float32(0.6)
	DefaultCollisionHeight = float32(1.85)

	SneakSpeedMultiplier = float32(0.3)
	MaxWalkSpeed         = float32(999)

	// WalkCycleFrequency is the frequency of the step height wave in relation to the walk phase.
	WalkCycleFrequency = float32(5.5)
	// MovingThreshold is the squared motion length above which an entity is considered to be moving.
	MovingThreshold   = float32(1e-5)
	SprintPhaseFactor = float32(0.9)
	WalkPhaseFactor   = float32(1.2)
	SneakPhaseFactor  = float32(1.2)
	SneakStepDivider  = float32(5)
	WalkStepDivider   = float32(1.8)
	LiquidAmplitude   = float32(0.8)
	SprintAmplitude   = float32(0.07)
	StepOffset        = float32(-0.2)
	ViewBobScale      = float32(60)

	FootstepSoundRange = float32(12)
	SneakStepVolume    = float32(0.5)
	ImpactStepVolume   = float32(1.5)
	// ImpactMotionThreshold is the vertical motion below which landing plays an impact sound.
	ImpactMotionThreshold = float32(-0.1)

	IdleAnimationDelay  = float32(20)
	IdleAnimationChance = 0.004

	// PetReach is the maximum distance to a selected entity for a pet animation to be played.
	PetReach = float32(1.15)
	// PetLargeHeight is the selection box height above which an entity is considered large.
	PetLargeHeight = float32(0.8)

	// EdgeSitYawLimit is the yaw in radians the body may deviate from its facing while sitting on an edge.
	EdgeSitYawLimit = float32(0.2)
	// EdgeSitBackOffset is the distance behind the entity at which the block it sits on is looked up.
	EdgeSitBackOffset = float32(-0.3)
	// EdgeSitMaxFrontHeight is the maximum height of a box in front of and below the entity.
	EdgeSitMaxFrontHeight = float32(0.5)

	StrongWindThreshold  = float32(0.75)
	StrongWindDuration   = float32(2)
	OutsideRainDistance  = 6
	WindFacingToleranceR = float32(45 * Pi / 180)
)

const (
	AnimationFloorSit    = "sitflooridle"
	AnimationEdgeSit     = "sitflooredge"
	AnimationDie         = "die"
	AnimationSneak       = "sneakidle"
	AnimationProtectEyes = "protecteyes"
	AnimationBreakHand   = "breakhand"
	AnimationInteract    = "interactstatic"
	AnimationPetLarge    = "petlarge"
	AnimationPetSmall    = "petsmall"
	AnimationPetSeraph   = "petseraph"
)

// EntityTypeItem is the entity type of dropped items, passed to can-spawn-nearby handlers.
const EntityTypeItem = "item"

// HandUse is the kind of action the hand of an entity is performing.
type HandUse uint8

const (
	HandUseNone HandUse = iota
	HandUseBlockInteract
	HandUseHeldItemInteract
	HandUseHeldItemAttack
	HandUseBlockBreak
)

// TalkType is the kind of voice line an entity says.
type TalkType uint8

const (
	TalkIdle TalkType = iota
	TalkIdleShort
	TalkHurt
	TalkHurt2
	TalkDeath
	TalkPurchase
	TalkComplain
	TalkGoodbye
	TalkMeet
	TalkThrust
	TalkShrug
	TalkLaugh
)

var emoteTalkTypes = map[string]TalkType{
	"wave":     TalkMeet,
	"nod":      TalkPurchase,
	"rage":     TalkComplain,
	"shrug":    TalkShrug,
	"facepalm": TalkIdleShort,
	"laugh":    TalkLaugh,
}

// EmoteTalkType returns the talk type that accompanies the emote passed, if any.
func EmoteTalkType(emote string) (TalkType, bool) {
	t, ok := emoteTalkTypes[emote]
	return t, ok
}

// SoundTalkType returns the talk type played in place of an entity sound.
func SoundTalkType(sound string) (TalkType, bool) {
	switch sound {
	case "hurt":
		return TalkHurt2, true
	case "death":
		return TalkDeath, true
	}
	return 0, false
}

// GameMode is the game mode of a player.
type GameMode uint8

const (
	GameModeSurvival GameMode = iota
	GameModeCreative
	GameModeSpectator
)

func (m GameMode) String() string {
	switch m {
	case GameModeSurvival:
		return "survival"
	case GameModeCreative:
		return "creative"
	case GameModeSpectator:
		return "spectator"
	}
	return "unknown"
}
