package isa

// field is an inclusive bit range [hi:lo] of an instruction word.
type field struct {
	hi, lo uint
}

func (fl field) width() uint {
	return fl.hi - fl.lo + 1
}

func (fl field) mask() uint32 {
	return uint32((uint64(1) << fl.width()) - 1)
}

// get extracts the field, right aligned.
func (fl field) get(word uint32) uint32 {
	return (word >> fl.lo) & fl.mask()
}

// set replaces the field in word, discarding value bits that do not fit.
func (fl field) set(word uint32, value uint32) uint32 {
	mask := fl.mask() << fl.lo
	return (word &^ mask) | ((value << fl.lo) & mask)
}

// Fields shared by several formats.
var (
	fieldOp4        = field{26, 23}
	fieldOp5        = field{27, 23}
	fieldDest       = field{22, 18}
	fieldSrc        = field{17, 13}
	fieldQuery      = field{12, 8}
	fieldShiftKind  = field{7, 5}
	fieldShiftCount = field{4, 0}
)
