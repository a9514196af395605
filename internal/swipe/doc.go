package swipe

// Package swipe turns a continuous drag gesture into card feedback. The
// Controller maps a cumulative translation to offset and rotation while the
// gesture is live, and to a left/right/cancel decision when it ends.
// Recognizers adapt pointer and touch input into the same two events.
