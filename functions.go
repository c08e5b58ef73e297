package govterm

// FunctionKind tags which VT operation a Function carries.
type FunctionKind uint8

const (
	FnBS FunctionKind = iota
	FnCBT
	FnCHA
	FnCHT
	FnCNL
	FnCPL
	FnCR
	FnCTC
	FnCUB
	FnCUD
	FnCUF
	FnCUP
	FnCUU
	FnDCH
	FnDECALN
	FnDECSTBM
	FnDECSTR
	FnDECSET
	FnDECRST
	FnDL
	FnECH
	FnED
	FnEL
	FnG1D4
	FnGZD4
	FnHT
	FnHTS
	FnICH
	FnIL
	FnLF
	FnNEL
	FnPrint
	FnRC
	FnREP
	FnRI
	FnRIS
	FnRM
	FnSC
	FnSD
	FnSGR
	FnSI
	FnSM
	FnSO
	FnSU
	FnTBC
	FnVPA
	FnVPR
	FnXTWinOps
)

// EdMode is ED's (Erase in Display) numeric argument.
type EdMode uint8

const (
	EdBelow EdMode = iota // 0 - cursor to end of screen
	EdAbove               // 1 - start of screen to cursor
	EdAll                 // 2 - whole screen
)

// ElMode is EL's (Erase in Line) numeric argument.
type ElMode uint8

const (
	ElToRight ElMode = iota // 0 - cursor to end of line
	ElToLeft                // 1 - start of line to cursor
	ElAll                   // 2 - whole line
)

// Function is the tagged union the parser emits for every recognized
// sequence. Only the fields relevant to Kind are populated.
type Function struct {
	Kind FunctionKind

	N  int // single-count operand (CUU/CUD/.../TBC/CTC/SU/SD/REP/...), default-resolved
	M  int // second operand (CUP row, DECSTBM bottom, XTWINOPS p2)
	P3 int // third operand (XTWINOPS p3)

	Ch      rune      // PRINT
	Charset Charset   // GZD4/G1D4
	EdMode  EdMode    // ED
	ElMode  ElMode    // EL
	Modes   []int     // SM/RM/DECSET/DECRST raw numeric params
	SGR     [][]uint16 // SGR: one slice of sub-parts per parameter
}
