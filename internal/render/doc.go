// Package render projects per-column ray distances onto a framebuffer.
//
// For each screen column a ray is cast at dir - fov/2 + c*fov/width. The raw
// distance is multiplied by cos(rayAngle - dir) to get the perpendicular
// distance, which keeps straight walls straight, and a wall one tile tall is
// projected onto a plane whose distance makes the field of view span the
// frame width. Columns without a hit are left untouched.
package render
