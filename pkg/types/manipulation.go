package types

// ManipulationType tags a kind of metadata override. Values 1-5 are the
// type tags used in the header directory of TexTools .meta files.
type ManipulationType uint32

const (
	ManipUnknown ManipulationType = 0
	ManipImc     ManipulationType = 1
	ManipEqdp    ManipulationType = 2
	ManipEqp     ManipulationType = 3
	ManipEst     ManipulationType = 4
	ManipGmp     ManipulationType = 5
	ManipRsp     ManipulationType = 6
)

// ContainerTypes are the section types a .meta container can carry, in
// the order they are decoded.
var ContainerTypes = [...]ManipulationType{ManipEqp, ManipGmp, ManipEqdp, ManipEst, ManipImc}

func (m ManipulationType) String() string {
	switch m {
	case ManipImc:
		return "Imc"
	case ManipEqdp:
		return "Eqdp"
	case ManipEqp:
		return "Eqp"
	case ManipEst:
		return "Est"
	case ManipGmp:
		return "Gmp"
	case ManipRsp:
		return "Rsp"
	default:
		return "Unknown"
	}
}
