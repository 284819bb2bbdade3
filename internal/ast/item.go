package ast

import (
	"leo/internal/source"
)

type ItemKind uint8

const (
	ItemProgram ItemKind = iota
	ItemFunction
	ItemTransition
	ItemInline
	ItemStruct
	ItemRecord
	ItemMapping
	ItemImport
	ItemConst
)

type Item struct {
	Kind    ItemKind
	Span    source.Span
	Payload PayloadID
}

// ParamMode is a function parameter visibility mode.
type ParamMode uint8

const (
	ParamNone ParamMode = iota
	ParamPublic
	ParamPrivate
	ParamConstant
)

// FnParam is one declared function parameter.
type FnParam struct {
	Name source.StringID
	Mode ParamMode
	Type TypeRef
	Span source.Span
}

// TypeRef is an unresolved type annotation: a name plus its span.
// Resolution is out of scope for the frontend.
type TypeRef struct {
	Name source.StringID
	Span source.Span
}

// ProgramItem is a `program name.aleo { ... }` scope.
type ProgramItem struct {
	Name  source.StringID
	Items []ItemID
}

// FnItem covers function, transition, and inline declarations; the Item kind
// distinguishes them.
type FnItem struct {
	Name        source.StringID
	ParamsStart ParamID
	ParamsCount uint32
	Return      TypeRef
	HasReturn   bool
	Body        StmtID
}

// StructField is one field of a struct or record declaration.
type StructField struct {
	Name source.StringID
	Type TypeRef
	Span source.Span
}

// StructItem covers struct and record declarations.
type StructItem struct {
	Name        source.StringID
	FieldsStart FieldID
	FieldsCount uint32
}

// MappingItem is a `mapping name: key => value;` declaration.
type MappingItem struct {
	Name  source.StringID
	Key   TypeRef
	Value TypeRef
}

// ImportItem is an `import name.aleo;` declaration.
type ImportItem struct {
	Name source.StringID
}

// ConstItem is a file- or program-level `const name: type = value;`.
type ConstItem struct {
	Name  source.StringID
	Type  TypeRef
	Value ExprID
}

type Items struct {
	Arena    *Arena[Item]
	Programs *Arena[ProgramItem]
	Fns      *Arena[FnItem]
	Params   *Arena[FnParam]
	Structs  *Arena[StructItem]
	Fields   *Arena[StructField]
	Mappings *Arena[MappingItem]
	Imports  *Arena[ImportItem]
	Consts   *Arena[ConstItem]
}

func NewItems(capHint uint) *Items {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Items{
		Arena:    NewArena[Item](capHint),
		Programs: NewArena[ProgramItem](capHint),
		Fns:      NewArena[FnItem](capHint),
		Params:   NewArena[FnParam](capHint),
		Structs:  NewArena[StructItem](capHint),
		Fields:   NewArena[StructField](capHint),
		Mappings: NewArena[MappingItem](capHint),
		Imports:  NewArena[ImportItem](capHint),
		Consts:   NewArena[ConstItem](capHint),
	}
}

func (i *Items) New(kind ItemKind, span source.Span, payload PayloadID) ItemID {
	return ItemID(i.Arena.Allocate(Item{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

func (i *Items) Get(id ItemID) *Item {
	return i.Arena.Get(uint32(id))
}

func (i *Items) NewProgram(name source.StringID, items []ItemID, span source.Span) ItemID {
	payload := i.Programs.Allocate(ProgramItem{
		Name:  name,
		Items: append([]ItemID(nil), items...),
	})
	return i.New(ItemProgram, span, PayloadID(payload))
}

// NewFn allocates a function-like item. kind must be ItemFunction,
// ItemTransition, or ItemInline.
func (i *Items) NewFn(kind ItemKind, name source.StringID, params []FnParam, ret TypeRef, hasRet bool, body StmtID, span source.Span) ItemID {
	var start ParamID
	for idx, p := range params {
		id := ParamID(i.Params.Allocate(p))
		if idx == 0 {
			start = id
		}
	}
	payload := i.Fns.Allocate(FnItem{
		Name:        name,
		ParamsStart: start,
		ParamsCount: uint32(len(params)),
		Return:      ret,
		HasReturn:   hasRet,
		Body:        body,
	})
	return i.New(kind, span, PayloadID(payload))
}

// NewStruct allocates a struct or record item. kind must be ItemStruct or
// ItemRecord.
func (i *Items) NewStruct(kind ItemKind, name source.StringID, fields []StructField, span source.Span) ItemID {
	var start FieldID
	for idx, f := range fields {
		id := FieldID(i.Fields.Allocate(f))
		if idx == 0 {
			start = id
		}
	}
	payload := i.Structs.Allocate(StructItem{
		Name:        name,
		FieldsStart: start,
		FieldsCount: uint32(len(fields)),
	})
	return i.New(kind, span, PayloadID(payload))
}

func (i *Items) NewMapping(name source.StringID, key, value TypeRef, span source.Span) ItemID {
	payload := i.Mappings.Allocate(MappingItem{Name: name, Key: key, Value: value})
	return i.New(ItemMapping, span, PayloadID(payload))
}

func (i *Items) NewImport(name source.StringID, span source.Span) ItemID {
	payload := i.Imports.Allocate(ImportItem{Name: name})
	return i.New(ItemImport, span, PayloadID(payload))
}

func (i *Items) NewConst(name source.StringID, typ TypeRef, value ExprID, span source.Span) ItemID {
	payload := i.Consts.Allocate(ConstItem{Name: name, Type: typ, Value: value})
	return i.New(ItemConst, span, PayloadID(payload))
}

// Program returns the payload for a program item, or nil.
func (i *Items) Program(id ItemID) *ProgramItem {
	item := i.Get(id)
	if item == nil || item.Kind != ItemProgram {
		return nil
	}
	return i.Programs.Get(uint32(item.Payload))
}

// Fn returns the payload for a function-like item, or nil.
func (i *Items) Fn(id ItemID) *FnItem {
	item := i.Get(id)
	if item == nil {
		return nil
	}
	switch item.Kind {
	case ItemFunction, ItemTransition, ItemInline:
		return i.Fns.Get(uint32(item.Payload))
	default:
		return nil
	}
}

// Struct returns the payload for a struct or record item, or nil.
func (i *Items) Struct(id ItemID) *StructItem {
	item := i.Get(id)
	if item == nil || (item.Kind != ItemStruct && item.Kind != ItemRecord) {
		return nil
	}
	return i.Structs.Get(uint32(item.Payload))
}

// Mapping returns the payload for a mapping item, or nil.
func (i *Items) Mapping(id ItemID) *MappingItem {
	item := i.Get(id)
	if item == nil || item.Kind != ItemMapping {
		return nil
	}
	return i.Mappings.Get(uint32(item.Payload))
}

// Import returns the payload for an import item, or nil.
func (i *Items) Import(id ItemID) *ImportItem {
	item := i.Get(id)
	if item == nil || item.Kind != ItemImport {
		return nil
	}
	return i.Imports.Get(uint32(item.Payload))
}

// Const returns the payload for a const item, or nil.
func (i *Items) Const(id ItemID) *ConstItem {
	item := i.Get(id)
	if item == nil || item.Kind != ItemConst {
		return nil
	}
	return i.Consts.Get(uint32(item.Payload))
}

// CollectParams copies out the parameter run for a function payload.
func (i *Items) CollectParams(fn *FnItem) []FnParam {
	if fn == nil || fn.ParamsCount == 0 || !fn.ParamsStart.IsValid() {
		return nil
	}
	result := make([]FnParam, 0, fn.ParamsCount)
	base := uint32(fn.ParamsStart)
	for offset := uint32(0); offset < fn.ParamsCount; offset++ {
		if p := i.Params.Get(base + offset); p != nil {
			result = append(result, *p)
		}
	}
	return result
}

// CollectFields copies out the field run for a struct payload.
func (i *Items) CollectFields(st *StructItem) []StructField {
	if st == nil || st.FieldsCount == 0 || !st.FieldsStart.IsValid() {
		return nil
	}
	result := make([]StructField, 0, st.FieldsCount)
	base := uint32(st.FieldsStart)
	for offset := uint32(0); offset < st.FieldsCount; offset++ {
		if f := i.Fields.Get(base + offset); f != nil {
			result = append(result, *f)
		}
	}
	return result
}
