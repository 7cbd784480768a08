package wavelet

// Channel constants
const (
	stereoChannels = 2 // Stereo channel count (used by interleave functions)
)

// Basis names
const (
	basisNameHaar        = "haar"
	basisNamePolynomial  = "polynomial"
	basisNameDaubechies4 = "daubechies4"
)

// Length limits
const (
	maxTransformLength = 1 << 30 // Largest accepted MaxLength
)
