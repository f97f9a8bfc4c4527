package domain

// ObjectKind is the on-disk discriminator of a placed object.
type ObjectKind string

const (
	KindChest            ObjectKind = "chest"
	KindShippingBin      ObjectKind = "shipping_bin"
	KindWood             ObjectKind = "wood"
	KindStone            ObjectKind = "stone"
	KindWeed             ObjectKind = "weed"
	KindTree             ObjectKind = "tree"
	KindFence            ObjectKind = "fence"
	KindPath             ObjectKind = "path"
	KindSprinkler        ObjectKind = "sprinkler"
	KindQualitySprinkler ObjectKind = "quality_sprinkler"
	KindPreservesJar     ObjectKind = "preserves_jar"
)

// Tree stages and their hit points.
const (
	TreeSeed    = 0
	TreeSapling = 1
	TreeMature  = 2

	TreeDaysPerStage = 3
)

// TreeHP is indexed by tree stage.
var TreeHP = [3]int{1, 2, 6}

// Default hit points for freshly placed nodes.
const (
	ResourceNodeHP = 3
	WeedHP         = 1
)

// PlacedObject is a closed set of world objects. Only types in this package implement it.
type PlacedObject interface {
	Kind() ObjectKind
	Clone() PlacedObject
	placedObject()
}

// Chest is a player-placed 24-slot container.
type Chest struct {
	Slots Slots
}

// ShippingBin is the 24-slot container sold off at day rollover.
type ShippingBin struct {
	Slots Slots
}

// ResourceNode is a wood or stone node harvested by attrition.
type ResourceNode struct {
	Resource ObjectKind // KindWood or KindStone
	HP       int
}

// Weed is cleared with the scythe.
type Weed struct {
	HP int
}

// Tree grows through three stages and is chopped for wood.
type Tree struct {
	Stage       int
	DaysInStage int
	HP          int
}

// SimplePlaceable is a fence, path, or sprinkler.
type SimplePlaceable struct {
	Placeable ObjectKind
}

// PreservesJar turns produce into preserves over time.
// CompleteAt is an absolute-minute timestamp.
type PreservesJar struct {
	Input      *ItemID
	Output     *ItemID
	CompleteAt *int
}

func (*Chest) Kind() ObjectKind             { return KindChest }
func (*ShippingBin) Kind() ObjectKind       { return KindShippingBin }
func (o *ResourceNode) Kind() ObjectKind    { return o.Resource }
func (*Weed) Kind() ObjectKind              { return KindWeed }
func (*Tree) Kind() ObjectKind              { return KindTree }
func (o *SimplePlaceable) Kind() ObjectKind { return o.Placeable }
func (*PreservesJar) Kind() ObjectKind      { return KindPreservesJar }

func (*Chest) placedObject()           {}
func (*ShippingBin) placedObject()     {}
func (*ResourceNode) placedObject()    {}
func (*Weed) placedObject()            {}
func (*Tree) placedObject()            {}
func (*SimplePlaceable) placedObject() {}
func (*PreservesJar) placedObject()    {}

func (o *Chest) Clone() PlacedObject       { return &Chest{Slots: o.Slots.Clone()} }
func (o *ShippingBin) Clone() PlacedObject { return &ShippingBin{Slots: o.Slots.Clone()} }
func (o *ResourceNode) Clone() PlacedObject {
	c := *o
	return &c
}
func (o *Weed) Clone() PlacedObject {
	c := *o
	return &c
}
func (o *Tree) Clone() PlacedObject {
	c := *o
	return &c
}
func (o *SimplePlaceable) Clone() PlacedObject {
	c := *o
	return &c
}
func (o *PreservesJar) Clone() PlacedObject {
	return &PreservesJar{
		Input:      clonePtr(o.Input),
		Output:     clonePtr(o.Output),
		CompleteAt: clonePtr(o.CompleteAt),
	}
}

// Idle reports whether the jar holds nothing and runs no timer.
func (o *PreservesJar) Idle() bool {
	return o.Input == nil && o.Output == nil && o.CompleteAt == nil
}

// IsResourceKind reports whether k names a wood/stone node.
func IsResourceKind(k ObjectKind) bool {
	return k == KindWood || k == KindStone
}

// IsSimpleKind reports whether k names a fence, path or sprinkler.
func IsSimpleKind(k ObjectKind) bool {
	switch k {
	case KindFence, KindPath, KindSprinkler, KindQualitySprinkler:
		return true
	}
	return false
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
