package framing

// bufferedFrames is the number of frames the ring buffer holds before it
// first has to grow.
const bufferedFrames = 2
