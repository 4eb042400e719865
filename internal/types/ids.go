package types

// ClassID is a stable handle to a class descriptor inside a Universe.
type ClassID uint32

// NoClassID marks the absence of a class.
const NoClassID ClassID = 0

func (id ClassID) IsValid() bool { return id != NoClassID }
