// Package render rasterizes cards. A Presenter paints the static face of a
// card (image, label, background, rounded corners and drop shadow) with the
// gg 2D engine, and Rotate tilts a rendered face for drag feedback.
package render
