package climb

// Outcome summarises one round of collision resolution.
type Outcome struct {
	Hits int  // Actors that struck the player
	Lost bool // Lives reached zero during this round
}

// Resolve tests the player against every live actor in spawn order.
// Each overlapping actor is destroyed and costs one life. Resolution stops
// as soon as lives reach zero so later overlaps in the same tick are ignored.
func Resolve(player *Player, pool *ActorPool) Outcome {
	var out Outcome
	if player.Lives <= 0 {
		return out
	}

	box := player.Rect()
	var hit []uint64
	for _, a := range pool.Actors() {
		if a.destroyed || !box.Intersects(a.Rect()) {
			continue
		}
		hit = append(hit, a.ID)
		player.Hit()
		out.Hits++
		if player.Lives == 0 {
			out.Lost = true
			break
		}
	}

	for _, id := range hit {
		pool.Remove(id)
	}
	return out
}
