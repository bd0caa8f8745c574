package common

const (
	BaseWidth  = 800
	BaseHeight = 600
)
