package loop

import (
	"github.com/tomz197/lonely-shooter/internal/object"
)

// World owns every live object. Objects is the draw/update order; the typed
// groups hold the same pointers for collision lookups.
//
// Spawns and removals requested during a pass are queued and applied by
// Flush, so the slices never change while they are being iterated.
type World struct {
	Objects      []object.Object
	Bullets      []*object.Projectile // player bullets and missiles
	EnemyBullets []*object.Projectile
	Asteroids    []*object.Asteroid
	Enemies      []*object.EnemyShip
	PowerUps     []*object.PowerUp

	toSpawn  []object.Object
	toRemove map[object.Object]struct{}
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		toRemove: make(map[object.Object]struct{}),
	}
}

// Add inserts obj immediately. Only use it outside an update or collision pass.
func (w *World) Add(obj object.Object) {
	w.Objects = append(w.Objects, obj)
	switch o := obj.(type) {
	case *object.Projectile:
		if o.Hostile() {
			w.EnemyBullets = append(w.EnemyBullets, o)
		} else {
			w.Bullets = append(w.Bullets, o)
		}
	case *object.Asteroid:
		w.Asteroids = append(w.Asteroids, o)
	case *object.EnemyShip:
		w.Enemies = append(w.Enemies, o)
	case *object.PowerUp:
		w.PowerUps = append(w.PowerUps, o)
	}
}

// Spawn queues an object to be added on the next Flush.
// Implements object.Spawner.
func (w *World) Spawn(obj object.Object) {
	w.toSpawn = append(w.toSpawn, obj)
}

// Remove marks obj destroyed and queues it for removal on the next Flush.
// Removing an object twice is a no-op.
func (w *World) Remove(obj object.Object) {
	if d, ok := obj.(object.Destructible); ok {
		d.MarkDestroyed()
	}
	w.toRemove[obj] = struct{}{}
}

// Alive reports whether obj may still take part in the current pass.
func Alive(obj object.Object) bool {
	if d, ok := obj.(object.Destructible); ok {
		return !d.IsDestroyed()
	}
	return true
}

// Flush commits queued removals, releasing pooled objects, then adds
// queued spawns.
func (w *World) Flush() {
	spawned := w.toSpawn
	w.toSpawn = nil

	if len(w.toRemove) > 0 {
		w.Objects = dropRemoved(w.Objects, w.toRemove)
		w.Bullets = dropRemoved(w.Bullets, w.toRemove)
		w.EnemyBullets = dropRemoved(w.EnemyBullets, w.toRemove)
		w.Asteroids = dropRemoved(w.Asteroids, w.toRemove)
		w.Enemies = dropRemoved(w.Enemies, w.toRemove)
		w.PowerUps = dropRemoved(w.PowerUps, w.toRemove)
		spawned = dropRemoved(spawned, w.toRemove)

		for obj := range w.toRemove {
			object.ReleaseObject(obj)
			delete(w.toRemove, obj)
		}
	}

	for _, obj := range spawned {
		w.Add(obj)
	}
}

// Reset drops every object and pending request.
func (w *World) Reset() {
	for _, obj := range w.Objects {
		object.ReleaseObject(obj)
	}
	*w = World{toRemove: make(map[object.Object]struct{})}
}

// Update runs every object's Update once and removes the ones that ask
// for it. Objects spawned during the pass are not updated until the next one.
func (w *World) Update(ctx object.UpdateContext) {
	for _, obj := range w.Objects {
		if obj.Update(ctx) {
			w.Remove(obj)
		}
	}
	w.Flush()
}

// Sprites returns the render view of all objects in draw order.
func (w *World) Sprites() []object.Sprite {
	sprites := make([]object.Sprite, 0, len(w.Objects))
	for _, obj := range w.Objects {
		sprites = append(sprites, obj.Sprite())
	}
	return sprites
}

// dropRemoved filters s in place, keeping the order of the survivors.
func dropRemoved[T object.Object](s []T, removed map[object.Object]struct{}) []T {
	kept := s[:0]
	for _, obj := range s {
		if _, gone := removed[object.Object(obj)]; !gone {
			kept = append(kept, obj)
		}
	}
	clear(s[len(kept):])
	return kept
}
