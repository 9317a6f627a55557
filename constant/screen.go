package constant

// Handheld LCD geometry in pixels
const (
	ScreenWidth  = 256
	ScreenHeight = 192
)

// Sprite geometry in pixels
const (
	PlayerSpriteWidth  = 16
	PlayerSpriteHeight = 16

	PropSpriteWidth  = 32
	PropSpriteHeight = 8

	PlatformSpriteWidth  = 32
	PlatformSpriteHeight = 16
)

// MaxSpriteSlots is the number of hardware sprite slots per screen
const MaxSpriteSlots = 128
