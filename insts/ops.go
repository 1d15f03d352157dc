// Package insts enumerates the wrapped R5900 integer-pipeline and
// multimedia instruction surface, with the classification predicates
// the timing scheduler needs: which pipeline's accumulator an
// operation defines or reads, and which operations touch SA.
package insts

// Op identifies one wrapped instruction.
type Op uint16

// Wrapped instruction surface.
const (
	OpNOP Op = iota

	// Pipeline 0 multiply/divide.
	OpMULT
	OpMULTU
	OpMADD
	OpMADDU
	OpDIV
	OpDIVU

	// Pipeline 1 multiply/divide.
	OpMULT1
	OpMULTU1
	OpMADD1
	OpMADDU1
	OpDIV1
	OpDIVU1

	// Accumulator moves, pipeline 0 and 1.
	OpMFLO
	OpMFHI
	OpMTLO
	OpMTHI
	OpMFLO1
	OpMFHI1
	OpMTLO1
	OpMTHI1

	// SA register and the funnel shift.
	OpMTSAB
	OpMTSAH
	OpQFSRV

	// Multimedia ALU groups (single-cycle, lane-wise).
	OpPADD
	OpPSUB
	OpPLOGIC
	OpPCMP
	OpPMINMAX
	OpPPAC
	OpPEXT
	OpPABS

	// Quadword memory access.
	OpLQ
	OpSQ
)

// Kind groups operations by execution resource.
type Kind uint8

// Operation kinds.
const (
	KindNOP Kind = iota
	KindMultiply
	KindDivide
	KindAccMove
	KindSA
	KindMMI
	KindMemory
)

// Kind returns the execution resource class of the operation.
func (o Op) Kind() Kind {
	switch o {
	case OpMULT, OpMULTU, OpMADD, OpMADDU, OpMULT1, OpMULTU1, OpMADD1, OpMADDU1:
		return KindMultiply
	case OpDIV, OpDIVU, OpDIV1, OpDIVU1:
		return KindDivide
	case OpMFLO, OpMFHI, OpMTLO, OpMTHI, OpMFLO1, OpMFHI1, OpMTLO1, OpMTHI1:
		return KindAccMove
	case OpMTSAB, OpMTSAH, OpQFSRV:
		return KindSA
	case OpPADD, OpPSUB, OpPLOGIC, OpPCMP, OpPMINMAX, OpPPAC, OpPEXT, OpPABS:
		return KindMMI
	case OpLQ, OpSQ:
		return KindMemory
	default:
		return KindNOP
	}
}

// DefinesAcc reports whether the operation defines a LO/HI pair, and
// which pipeline's pair it defines.
func (o Op) DefinesAcc() (pipe int, ok bool) {
	switch o {
	case OpMULT, OpMULTU, OpMADD, OpMADDU, OpDIV, OpDIVU, OpMTLO, OpMTHI:
		return 0, true
	case OpMULT1, OpMULTU1, OpMADD1, OpMADDU1, OpDIV1, OpDIVU1, OpMTLO1, OpMTHI1:
		return 1, true
	default:
		return 0, false
	}
}

// ReadsAcc reports whether the operation observes a LO/HI pair, and
// which pipeline's pair it reads. The multiply-accumulate family both
// reads and defines its pair.
func (o Op) ReadsAcc() (pipe int, ok bool) {
	switch o {
	case OpMFLO, OpMFHI, OpMADD, OpMADDU:
		return 0, true
	case OpMFLO1, OpMFHI1, OpMADD1, OpMADDU1:
		return 1, true
	default:
		return 0, false
	}
}

// TouchesSA reports whether the operation reads or writes the SA
// register. These operations are subject to the three-slot hazard
// window.
func (o Op) TouchesSA() bool {
	switch o {
	case OpMTSAB, OpMTSAH, OpQFSRV:
		return true
	default:
		return false
	}
}

// IsLoad reports whether the operation reads memory.
func (o Op) IsLoad() bool {
	return o == OpLQ
}

// IsStore reports whether the operation writes memory.
func (o Op) IsStore() bool {
	return o == OpSQ
}

var opNames = map[Op]string{
	OpNOP:     "NOP",
	OpMULT:    "MULT",
	OpMULTU:   "MULTU",
	OpMADD:    "MADD",
	OpMADDU:   "MADDU",
	OpDIV:     "DIV",
	OpDIVU:    "DIVU",
	OpMULT1:   "MULT1",
	OpMULTU1:  "MULTU1",
	OpMADD1:   "MADD1",
	OpMADDU1:  "MADDU1",
	OpDIV1:    "DIV1",
	OpDIVU1:   "DIVU1",
	OpMFLO:    "MFLO",
	OpMFHI:    "MFHI",
	OpMTLO:    "MTLO",
	OpMTHI:    "MTHI",
	OpMFLO1:   "MFLO1",
	OpMFHI1:   "MFHI1",
	OpMTLO1:   "MTLO1",
	OpMTHI1:   "MTHI1",
	OpMTSAB:   "MTSAB",
	OpMTSAH:   "MTSAH",
	OpQFSRV:   "QFSRV",
	OpPADD:    "PADD",
	OpPSUB:    "PSUB",
	OpPLOGIC:  "PLOGIC",
	OpPCMP:    "PCMP",
	OpPMINMAX: "PMINMAX",
	OpPPAC:    "PPAC",
	OpPEXT:    "PEXT",
	OpPABS:    "PABS",
	OpLQ:      "LQ",
	OpSQ:      "SQ",
}

// String returns the mnemonic.
func (o Op) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return "UNKNOWN"
}
