package ast

type (
	ArrowID uint32
)

const (
	NoArrowID ArrowID = 0
)

// NoToken marks a missing token index.
const NoToken = -1

func (id ArrowID) IsValid() bool { return id != NoArrowID }
