package haar

// Interpolation window and evaluation offsets.
//
// The even half is treated as samples at x = 0, 1, 2, ... and each odd
// sample sits halfway between two of them. Near the edges there are not two
// known points on each side, so the window is pinned to the first or last
// four samples and the offset moves instead.
const (
	windowPoints = 4 // known points copied into the interpolation window

	offsetFirst    = 0.5 // first odd sample, window starts at 0
	offsetInterior = 1.5 // centred window
	offsetPenult   = 2.5 // second to last odd sample, window pinned to the end
	offsetLast     = 3.5 // last odd sample
)

// updateScale halves the Haar difference so the even sample becomes the pair average.
const updateScale = 0.5
