package main

// Default command-line flag values
const (
	defaultBasis    = "daubechies4"
	defaultLength   = 1024 // Transform length in samples
	defaultChannels = 1
	defaultSignal   = "sine"
)

// Test signal parameters
const (
	testSignalFrequency = 1000.0  // 1 kHz test tone
	testSampleRate      = 44100.0 // Rate the tone is sampled at
	constantLevel       = 0.5
)

// Demo transform lengths
const (
	lengthShort  = 64
	lengthMedium = 1024
	lengthLong   = 16384
)

// Demo channel configurations
const (
	monoChannels   = 1
	stereoChannels = 2
	surround5_1    = 6
	surround7_1    = 8
)

// Report formatting
const (
	percentScale   = 100
	bandsToShow    = 4 // Finest bands printed in the summary
	coeffsToShow   = 8
	demoIterations = 10
)
