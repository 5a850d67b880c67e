package config

type OffsetInitial string

const (
	OffsetNewest OffsetInitial = "newest"
	OffsetOldest OffsetInitial = "oldest"
)
