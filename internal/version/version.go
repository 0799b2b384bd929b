// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "1.2.0"

// Milestones:
// 1.2.0 - HTTP API with WebSocket position stream, CSV catalog loading
// 1.1.0 - Dome (azimuthal) view, pinch and double-tap gestures, session restore
// 1.0.0 - Perspective sky view, star colors from B-V index, twilight status
// 0.2.0 - Visibility engine, per-frame sidereal time sharing
// 0.1.0 - Initial release: coordinate pipeline, embedded bright-star catalog
