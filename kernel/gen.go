package kernel

//go:generate go run ../cmd/genkernels -root ..
