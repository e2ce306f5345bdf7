package genxml

//go:generate go tool stringer -type=ContainerKind -linecomment -output=kind_string.go

// ContainerKind is the element type that owns a set of fields.
type ContainerKind int

const (
	_ ContainerKind = iota // zero value is not a container

	KindInstruction // instruction
	KindStruct      // struct
	KindRegister    // register
)

var containerElements = map[string]ContainerKind{
	KindInstruction.String(): KindInstruction,
	KindStruct.String():      KindStruct,
	KindRegister.String():    KindRegister,
}

// ContainerKindOf maps an element name to its container kind.
func ContainerKindOf(element string) (ContainerKind, bool) {
	k, ok := containerElements[element]
	return k, ok
}
