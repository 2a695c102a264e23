package systems

import (
	"github.com/automoto/survivors/components"
	cfg "github.com/automoto/survivors/config"
	"github.com/automoto/survivors/shared/gamemath"
	"github.com/automoto/survivors/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// colliders matches every entity that takes part in collision detection.
var colliders = donburi.NewQuery(filter.Contains(components.Position, components.Collider))

type colliderEntry struct {
	entity donburi.Entity
	entry  *donburi.Entry
	rect   gamemath.Rect
}

// UpdateCollisions rebuilds the Collisions list of every collider: B is
// listed on A exactly when their rectangles overlap with non-zero area.
func UpdateCollisions(w donburi.World) {
	entries := gatherColliders(w)

	if cfg.Collision.Broadphase == cfg.BroadphaseGrid {
		detectGrid(w, entries)
		return
	}
	detectAllPairs(entries)
}

func gatherColliders(w donburi.World) []colliderEntry {
	var entries []colliderEntry
	colliders.Each(w, func(e *donburi.Entry) {
		c := components.Collider.Get(e)
		c.Collisions = c.Collisions[:0]
		entries = append(entries, colliderEntry{
			entity: e.Entity(),
			entry:  e,
			rect:   components.WorldRect(e),
		})
	})
	return entries
}

func addCollision(a, b colliderEntry) {
	ca := components.Collider.Get(a.entry)
	ca.Collisions = append(ca.Collisions, b.entity)
	cb := components.Collider.Get(b.entry)
	cb.Collisions = append(cb.Collisions, a.entity)
}

func detectAllPairs(entries []colliderEntry) {
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			if entries[i].rect.Overlaps(entries[j].rect) {
				addCollision(entries[i], entries[j])
			}
		}
	}
}

// detectGrid narrows candidate pairs with the resolv space, then applies the
// same exact test as detectAllPairs. Proxies are padded by a pixel so that
// cell lookups never miss a pair whose rectangles overlap.
func detectGrid(w donburi.World, entries []colliderEntry) {
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		panic("grid broadphase needs a collision space")
	}
	sd := components.Space.Get(spaceEntry)

	index := make(map[donburi.Entity]int, len(entries))
	for i, ce := range entries {
		index[ce.entity] = i
	}

	// Drop proxies of colliders that no longer exist.
	for entity, obj := range sd.Proxies {
		if _, alive := index[entity]; !alive {
			sd.Space.Remove(obj)
			delete(sd.Proxies, entity)
		}
	}

	var strays []int

	for i, ce := range entries {
		obj, ok := sd.Proxies[ce.entity]
		if !ok {
			objTags := []string{tags.ResolvCollider}
			if ce.entry.HasComponent(tags.Wall) {
				objTags = append(objTags, tags.ResolvStatic)
			}
			obj = resolv.NewObject(0, 0, 0, 0, objTags...)
			obj.Data = ce.entity
			sd.Proxies[ce.entity] = obj
			sd.Space.Add(obj)
		}
		obj.X = ce.rect.MinX - 1
		obj.Y = ce.rect.MinY - 1
		obj.W = ce.rect.Width() + 2
		obj.H = ce.rect.Height() + 2
		obj.Update()

		if obj.X < 0 || obj.Y < 0 || obj.X+obj.W > sd.Width || obj.Y+obj.H > sd.Height {
			strays = append(strays, i)
		}
	}

	tested := make(map[[2]int]bool)
	testPair := func(i, j int) {
		if i == j {
			return
		}
		if i > j {
			i, j = j, i
		}
		key := [2]int{i, j}
		if tested[key] {
			return
		}
		tested[key] = true
		if entries[i].rect.Overlaps(entries[j].rect) {
			addCollision(entries[i], entries[j])
		}
	}

	for i, ce := range entries {
		check := sd.Proxies[ce.entity].Check(0, 0, tags.ResolvCollider)
		if check == nil {
			continue
		}
		for _, other := range check.Objects {
			entity, ok := other.Data.(donburi.Entity)
			if !ok {
				continue
			}
			if j, ok := index[entity]; ok {
				testPair(i, j)
			}
		}
	}

	// Proxies partly outside the space may miss cells, so test them
	// against everything.
	for _, i := range strays {
		for j := range entries {
			testPair(i, j)
		}
	}
}
