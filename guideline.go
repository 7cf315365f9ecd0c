package apiguide

import (
	"encoding"
	"fmt"
	"strings"
)

// ID identifies a guideline. Values are stable across releases, never renumber them.
type ID int

const (
	idInvalid ID = iota

	// Naming.
	CCase
	CConv
	CGetter
	CIter
	CIterTy
	CFeature
	CWordOrder

	// Interoperability.
	CCommonTraits
	CConvTraits
	CCollect
	CSerde
	CSendSync
	CGoodErr
	CNumFmt
	CRWValue

	// Predictability.
	CSmartPtr
	CConvSpecific
	CMethod
	CNoOut
	COverload
	CDeref
	CCtor

	// Flexibility.
	CIntermediate
	CCallerControl
	CGeneric
	CObject

	// Type safety.
	CNewtype
	CCustomType
	CBitflag
	CBuilder

	// Dependability.
	CValidate
	CDtorFail
	CDtorBlock

	// Debuggability.
	CDebug
	CDebugNonempty

	// Future proofing.
	CSealed
	CStructPrivate
	CNewtypeHide
	CStructBounds

	// Necessities.
	CStable
	CPermissive

	// Documentation.
	CCrateDoc
	CExample
	CQuestionMark
	CFailure
	CLink
	CMetadata
	CRelnotes
	CHidden

	// Macros.
	CEvocative
	CMacroAttr
	CAnywhere
	CMacroVis
	CMacroTy

	idEnd
)

// idNames is keyed by ID, so the compiler rejects an identifier declared twice.
var idNames = [...]string{
	CCase:      "C_CASE",
	CConv:      "C_CONV",
	CGetter:    "C_GETTER",
	CIter:      "C_ITER",
	CIterTy:    "C_ITER_TY",
	CFeature:   "C_FEATURE",
	CWordOrder: "C_WORD_ORDER",

	CCommonTraits: "C_COMMON_TRAITS",
	CConvTraits:   "C_CONV_TRAITS",
	CCollect:      "C_COLLECT",
	CSerde:        "C_SERDE",
	CSendSync:     "C_SEND_SYNC",
	CGoodErr:      "C_GOOD_ERR",
	CNumFmt:       "C_NUM_FMT",
	CRWValue:      "C_RW_VALUE",

	CSmartPtr:     "C_SMART_PTR",
	CConvSpecific: "C_CONV_SPECIFIC",
	CMethod:       "C_METHOD",
	CNoOut:        "C_NO_OUT",
	COverload:     "C_OVERLOAD",
	CDeref:        "C_DEREF",
	CCtor:         "C_CTOR",

	CIntermediate:  "C_INTERMEDIATE",
	CCallerControl: "C_CALLER_CONTROL",
	CGeneric:       "C_GENERIC",
	CObject:        "C_OBJECT",

	CNewtype:    "C_NEWTYPE",
	CCustomType: "C_CUSTOM_TYPE",
	CBitflag:    "C_BITFLAG",
	CBuilder:    "C_BUILDER",

	CValidate:  "C_VALIDATE",
	CDtorFail:  "C_DTOR_FAIL",
	CDtorBlock: "C_DTOR_BLOCK",

	CDebug:         "C_DEBUG",
	CDebugNonempty: "C_DEBUG_NONEMPTY",

	CSealed:        "C_SEALED",
	CStructPrivate: "C_STRUCT_PRIVATE",
	CNewtypeHide:   "C_NEWTYPE_HIDE",
	CStructBounds:  "C_STRUCT_BOUNDS",

	CStable:     "C_STABLE",
	CPermissive: "C_PERMISSIVE",

	CCrateDoc:     "C_CRATE_DOC",
	CExample:      "C_EXAMPLE",
	CQuestionMark: "C_QUESTION_MARK",
	CFailure:      "C_FAILURE",
	CLink:         "C_LINK",
	CMetadata:     "C_METADATA",
	CRelnotes:     "C_RELNOTES",
	CHidden:       "C_HIDDEN",

	CEvocative: "C_EVOCATIVE",
	CMacroAttr: "C_MACRO_ATTR",
	CAnywhere:  "C_ANYWHERE",
	CMacroVis:  "C_MACRO_VIS",
	CMacroTy:   "C_MACRO_TY",
}

func (id ID) valid() bool {
	return id > idInvalid && id < idEnd
}

// String returns the canonical identifier.
// Example: "C_SMART_PTR"
func (id ID) String() string {
	if !id.valid() {
		return fmt.Sprintf("guideline-unknown(%d)", id)
	}

	return idNames[id]
}

// Published returns the identifier the way the guidelines book spells it.
// Example: "C-SMART-PTR"
func (id ID) Published() string {
	if !id.valid() {
		return id.String()
	}

	return strings.ReplaceAll(idNames[id], "_", "-")
}

// Entry returns the catalogue entry of the guideline.
func (id ID) Entry() (Entry, error) {
	if !id.valid() {
		return Entry{}, &NotFoundError{Kind: NotFoundGuideline, Name: id.String()}
	}

	return get().entries[id], nil
}

// ParseID returns a guideline by its identifier. Both C_CASE and C-CASE spellings are accepted.
func ParseID(identifier string) (ID, error) {
	id, ok := get().byID.Get(strings.ReplaceAll(identifier, "-", "_"))
	if !ok {
		return idInvalid, &NotFoundError{Kind: NotFoundGuideline, Name: identifier}
	}

	return id, nil
}

var (
	_ encoding.TextMarshaler   = ID(0)
	_ encoding.TextUnmarshaler = (*ID)(nil)
)

// MarshalText for setting values with configs, CLI, etc.
func (id ID) MarshalText() ([]byte, error) {
	if !id.valid() {
		return nil, fmt.Errorf("cannot marshal invalid ID(%d)", id)
	}

	return []byte(idNames[id]), nil
}

// UnmarshalText for setting values with configs, CLI, etc.
func (id *ID) UnmarshalText(rawtext []byte) error {
	v, err := ParseID(string(rawtext))
	if err != nil {
		return err
	}

	*id = v
	return nil
}
