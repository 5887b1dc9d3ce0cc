package component

import "github.com/oomph-ac/playersim/player"

// Register registers the components for the given player. Posture and locomotion run before the
// animation components, which depend on the box height and walk state computed by them.
func Register(p *player.Player) {
	p.AddComponent(NewPostureComponent(p))
	p.AddComponent(NewLocomotionComponent(p))
	p.AddComponent(NewHandAnimationComponent(p))
	p.AddComponent(NewEdgeSitComponent(p))
	p.AddComponent(NewAmbientAnimationComponent(p))
	p.AddComponent(NewNetworkComponent(p))
}
