package loop

// Game rule constants.

// Scoring
const (
	AsteroidBaseScore  = 50 // minus the asteroid's size factor
	EnemyScore         = 75
	ShieldPickupScore  = 100
	MissilePickupScore = 50
)

// Damage to the player's shield
const (
	EnemyBulletDamage = 5
	AsteroidDamageMin = 10 // inclusive
	AsteroidDamageMax = 25 // inclusive
	EnemyRamDamage    = 35
)

// Pickups
const (
	ShieldPickupAmount = 20
)

// gridCellSize must cover the largest centre distance at which a player
// shot can touch a target (big asteroid plus missile, about 68px).
const gridCellSize = 100
