package asm

import (
	"fmt"
	"strings"

	"github.com/ezrec/minicomp/style"
)

// Instruction is a single parsed instruction or directive. Only the fields
// relevant to its Kind are set.
type Instruction struct {
	Kind    Kind
	Reg     Register // Operand of data, jmpr and the I/O instructions.
	Src     Register // ALU source, ld pointer, st source.
	Dst     Register // ALU destination, ld destination, st pointer.
	Dst2    Register // Second spelling of Dst in `rX = rX op rY`.
	HasDst2 bool
	Value   Literal // Immediate of data, byte, jumps and pragmas.
	Label   string  // Label name, as spelled.
	Double  bool    // Label binds to the following byte.
	Flags   byte    // Conditional jump flags.
}

// kindDef is the per-kind behaviour of an instruction.
type kindDef struct {
	parse  func(toks Tokens) (ins Instruction, ok bool)
	render func(ins *Instruction, st style.Style) string
	size   func(ins *Instruction, offset int) (int, error) // nil means 1 byte.
	encode func(ins *Instruction, offset int, labels map[string]int) ([]byte, error)
}

// kinds is indexed by Kind, and tried in that order.
var kinds = [KIND_COUNT]kindDef{
	KIND_DATA: {
		parse: func(toks Tokens) (ins Instruction, ok bool) {
			switch {
			case toks.Match("data", TOKEN_REG, TOKEN_NUMBER):
				ins = Instruction{Reg: toks.Reg(1), Value: toks.Lit(2)}
			case toks.Match(TOKEN_REG, "=", TOKEN_NUMBER):
				ins = Instruction{Reg: toks.Reg(0), Value: toks.Lit(2)}
			default:
				return
			}
			ok = true
			return
		},
		render: func(ins *Instruction, st style.Style) string {
			if st.C() {
				return fmt.Sprintf("%v = %v", ins.Reg.Render(st), ins.Value)
			}
			return fmt.Sprintf("data %v %v", ins.Reg.Render(st), ins.Value)
		},
		size: fixedSize(2),
		encode: func(ins *Instruction, offset int, labels map[string]int) ([]byte, error) {
			value, err := ins.Value.Resolve(labels)
			if err != nil {
				return nil, err
			}
			return []byte{CLASS_DATA<<4 | byte(ins.Reg.Index), value}, nil
		},
	},
	KIND_EMPTY: {
		parse: func(toks Tokens) (ins Instruction, ok bool) {
			ok = toks.Match()
			return
		},
		render: func(ins *Instruction, st style.Style) string {
			return ""
		},
		size:   fixedSize(0),
		encode: emitNothing,
	},
	KIND_BYTE: {
		parse: func(toks Tokens) (ins Instruction, ok bool) {
			if !toks.Match(".", TOKEN_NUMBER) {
				return
			}
			ins = Instruction{Value: toks.Lit(1)}
			ok = true
			return
		},
		render: func(ins *Instruction, st style.Style) string {
			return fmt.Sprintf(". %v", ins.Value)
		},
		encode: func(ins *Instruction, offset int, labels map[string]int) ([]byte, error) {
			value, err := ins.Value.Resolve(labels)
			if err != nil {
				return nil, err
			}
			return []byte{value}, nil
		},
	},
	KIND_LABEL: {
		parse: func(toks Tokens) (ins Instruction, ok bool) {
			if toks.Len() != 1 {
				return
			}
			text := toks.Words[0].Text
			if !strings.HasSuffix(text, ":") || strings.HasPrefix(text, ":") {
				return
			}
			text = text[:len(text)-1]
			if strings.HasSuffix(text, ":") {
				ins.Double = true
				text = text[:len(text)-1]
			}
			ins.Label = text
			ok = true
			return
		},
		render: func(ins *Instruction, st style.Style) string {
			if ins.Double {
				return ins.Label + "::"
			}
			return ins.Label + ":"
		},
		size:   fixedSize(0),
		encode: emitNothing,
	},
	KIND_SETPOS: {
		parse:  pragmaParse("setpos"),
		render: pragmaRender("setpos"),
		size:   setposSize,
		encode: func(ins *Instruction, offset int, labels map[string]int) ([]byte, error) {
			size, err := setposSize(ins, offset)
			if err != nil {
				return nil, err
			}
			return make([]byte, size), nil
		},
	},
	KIND_POS: {
		parse:  pragmaParse("pos"),
		render: pragmaRender("pos"),
		size:   fixedSize(0),
		encode: func(ins *Instruction, offset int, labels map[string]int) ([]byte, error) {
			if ins.Value.Value != offset {
				return nil, ErrPosition{Pragma: "pos", Want: ins.Value.Value, Have: offset}
			}
			return nil, nil
		},
	},
	KIND_PRINTPOS: {
		parse: func(toks Tokens) (ins Instruction, ok bool) {
			ok = toks.Match("pragma", "printpos")
			return
		},
		render: func(ins *Instruction, st style.Style) string {
			return "pragma printpos"
		},
		size:   fixedSize(0),
		encode: emitNothing,
	},
	KIND_OUTD: ioKind("outd", IO_OUT_DATA),
	KIND_IND:  ioKind("ind", IO_IN_DATA),
	KIND_OUTA: ioKind("outa", IO_OUT_ADDR),
	KIND_INA:  ioKind("ina", IO_IN_ADDR),
	KIND_JMP: {
		parse: func(toks Tokens) (ins Instruction, ok bool) {
			if !toks.Match("jmp", TOKEN_NUMBER) {
				return
			}
			ins = Instruction{Value: toks.Lit(1)}
			ok = true
			return
		},
		render: func(ins *Instruction, st style.Style) string {
			return fmt.Sprintf("jmp %v", ins.Value)
		},
		size: fixedSize(2),
		encode: func(ins *Instruction, offset int, labels map[string]int) ([]byte, error) {
			value, err := ins.Value.Resolve(labels)
			if err != nil {
				return nil, err
			}
			return []byte{CLASS_JMP << 4, value}, nil
		},
	},
	KIND_JMPR: {
		parse: func(toks Tokens) (ins Instruction, ok bool) {
			if !toks.Match("jmpr", TOKEN_REG) {
				return
			}
			ins = Instruction{Reg: toks.Reg(1)}
			ok = true
			return
		},
		render: func(ins *Instruction, st style.Style) string {
			return fmt.Sprintf("jmpr %v", ins.Reg.Render(st))
		},
		encode: func(ins *Instruction, offset int, labels map[string]int) ([]byte, error) {
			return []byte{CLASS_JMPR<<4 | byte(ins.Reg.Index)}, nil
		},
	},
	KIND_JXXX: {
		parse: func(toks Tokens) (ins Instruction, ok bool) {
			if toks.Len() != 2 || toks.Words[0].Class != TOKEN_SYMBOL || toks.Words[1].Class != TOKEN_NUMBER {
				return
			}
			word := toks.Word(0)
			if !strings.HasPrefix(word, "j") {
				return
			}
			for _, c := range word[1:] {
				bit := strings.IndexRune(jumpFlags, c)
				if bit < 0 {
					return
				}
				ins.Flags |= 1 << bit
			}
			ins.Value = toks.Lit(1)
			ok = true
			return
		},
		render: func(ins *Instruction, st style.Style) string {
			var flags []byte
			for bit := range len(jumpFlags) {
				if ins.Flags&(1<<bit) != 0 {
					flags = append(flags, jumpFlags[bit])
				}
			}
			return fmt.Sprintf("j%s %v", flags, ins.Value)
		},
		size: fixedSize(2),
		encode: func(ins *Instruction, offset int, labels map[string]int) ([]byte, error) {
			value, err := ins.Value.Resolve(labels)
			if err != nil {
				return nil, err
			}
			return []byte{CLASS_JXXX<<4 | ins.Flags, value}, nil
		},
	},
	KIND_AND: binaryKind("and", "&", ALU_AND),
	KIND_OR:  binaryKind("or", "|", ALU_OR),
	KIND_XOR: binaryKind("xor", "^", ALU_XOR),
	KIND_NOT: {
		parse: func(toks Tokens) (ins Instruction, ok bool) {
			switch {
			case toks.Match("not", TOKEN_REG, TOKEN_REG):
				ins = Instruction{Src: toks.Reg(1).Inverted('~'), Dst: toks.Reg(2)}
			case toks.Match(TOKEN_REG, "=~", TOKEN_REG):
				ins = Instruction{Src: toks.Reg(2).Inverted('~'), Dst: toks.Reg(0)}
			case toks.Match(TOKEN_REG, "=!", TOKEN_REG):
				ins = Instruction{Src: toks.Reg(2).Inverted('!'), Dst: toks.Reg(0)}
			case toks.Match(TOKEN_REG, "=", TOKEN_REGT):
				ins = Instruction{Src: toks.Reg(2), Dst: toks.Reg(0)}
			default:
				return
			}
			ok = true
			return
		},
		render: func(ins *Instruction, st style.Style) string {
			if st.C() {
				return fmt.Sprintf("%v = %v", ins.Dst.Render(st), ins.Src.Render(st))
			}
			return fmt.Sprintf("not %v %v", ins.Src.Render(st), ins.Dst.Render(st))
		},
		encode: aluEncode(ALU_NOT),
	},
	KIND_ADD: binaryKind("add", "+", ALU_ADD),
	KIND_SHL: shiftKind("shl", "<<", ALU_SHL),
	KIND_SHR: shiftKind("shr", ">>", ALU_SHR),
	KIND_CLF: {
		parse: func(toks Tokens) (ins Instruction, ok bool) {
			ok = toks.Match("clf")
			return
		},
		render: func(ins *Instruction, st style.Style) string {
			return "clf"
		},
		encode: func(ins *Instruction, offset int, labels map[string]int) ([]byte, error) {
			return []byte{CLASS_CLF << 4}, nil
		},
	},
	KIND_CMP: {
		parse: func(toks Tokens) (ins Instruction, ok bool) {
			switch {
			case toks.Match("cmp", TOKEN_REG, TOKEN_REG):
				ins = Instruction{Src: toks.Reg(1), Dst: toks.Reg(2)}
			case toks.Match(TOKEN_REG, "==", TOKEN_REG):
				ins = Instruction{Src: toks.Reg(0), Dst: toks.Reg(2)}
			default:
				return
			}
			ok = true
			return
		},
		render: func(ins *Instruction, st style.Style) string {
			if st.C() {
				return fmt.Sprintf("%v == %v", ins.Src.Render(st), ins.Dst.Render(st))
			}
			return fmt.Sprintf("cmp %v %v", ins.Src.Render(st), ins.Dst.Render(st))
		},
		encode: aluEncode(ALU_CMP),
	},
	KIND_LD: {
		parse: func(toks Tokens) (ins Instruction, ok bool) {
			switch {
			case toks.Match("ld", TOKEN_REG, TOKEN_REG):
				ins = Instruction{Src: toks.Reg(1).Pointer(), Dst: toks.Reg(2)}
			case toks.Match(TOKEN_REG, "=", TOKEN_REGP):
				ins = Instruction{Src: toks.Reg(2), Dst: toks.Reg(0)}
			default:
				return
			}
			ok = true
			return
		},
		render: func(ins *Instruction, st style.Style) string {
			if st.C() {
				return fmt.Sprintf("%v = %v", ins.Dst.Render(st), ins.Src.Render(st))
			}
			return fmt.Sprintf("ld %v %v", ins.Src.Render(st), ins.Dst.Render(st))
		},
		encode: func(ins *Instruction, offset int, labels map[string]int) ([]byte, error) {
			return []byte{CLASS_LD<<4 | byte(ins.Src.Index<<2|ins.Dst.Index)}, nil
		},
	},
	KIND_ST: {
		parse: func(toks Tokens) (ins Instruction, ok bool) {
			switch {
			case toks.Match("st", TOKEN_REG, TOKEN_REG):
				ins = Instruction{Dst: toks.Reg(1).Pointer(), Src: toks.Reg(2)}
			case toks.Match(TOKEN_REGP, "=", TOKEN_REG):
				ins = Instruction{Dst: toks.Reg(0), Src: toks.Reg(2)}
			default:
				return
			}
			ok = true
			return
		},
		render: func(ins *Instruction, st style.Style) string {
			if st.C() {
				return fmt.Sprintf("%v = %v", ins.Dst.Render(st), ins.Src.Render(st))
			}
			return fmt.Sprintf("st %v %v", ins.Dst.Render(st), ins.Src.Render(st))
		},
		encode: func(ins *Instruction, offset int, labels map[string]int) ([]byte, error) {
			return []byte{CLASS_ST<<4 | byte(ins.Dst.Index<<2|ins.Src.Index)}, nil
		},
	},
}

func fixedSize(size int) func(*Instruction, int) (int, error) {
	return func(*Instruction, int) (int, error) {
		return size, nil
	}
}

// setposSize is the zero padding needed to move from offset to the
// pragma's target.
func setposSize(ins *Instruction, offset int) (int, error) {
	want := ins.Value.Value
	if want > 0x100 {
		return 0, ErrOverflow(want)
	}
	if want < offset {
		return 0, ErrPosition{Pragma: "setpos", Want: want, Have: offset}
	}
	return want - offset, nil
}

func emitNothing(*Instruction, int, map[string]int) ([]byte, error) {
	return nil, nil
}

// pragmaParse accepts `pragma <name> N`, where N is numeric.
func pragmaParse(name string) func(Tokens) (Instruction, bool) {
	return func(toks Tokens) (ins Instruction, ok bool) {
		if !toks.Match("pragma", name, TOKEN_NUMBER) || toks.Lit(2).Kind != LITERAL_NUMBER {
			return
		}
		ins = Instruction{Value: toks.Lit(2)}
		ok = true
		return
	}
}

func pragmaRender(name string) func(*Instruction, style.Style) string {
	return func(ins *Instruction, st style.Style) string {
		return fmt.Sprintf("pragma %s %d", name, ins.Value.Value)
	}
}

// ioKind is a register I/O instruction, `0111 SSRR`.
func ioKind(mnemonic string, op int) kindDef {
	return kindDef{
		parse: func(toks Tokens) (ins Instruction, ok bool) {
			if !toks.Match(mnemonic, TOKEN_REG) {
				return
			}
			ins = Instruction{Reg: toks.Reg(1)}
			ok = true
			return
		},
		render: func(ins *Instruction, st style.Style) string {
			return fmt.Sprintf("%s %v", mnemonic, ins.Reg.Render(st))
		},
		encode: func(ins *Instruction, offset int, labels map[string]int) ([]byte, error) {
			return []byte{CLASS_IO<<4 | byte(op<<2|ins.Reg.Index)}, nil
		},
	}
}

func aluEncode(op int) func(*Instruction, int, map[string]int) ([]byte, error) {
	return func(ins *Instruction, offset int, labels map[string]int) ([]byte, error) {
		return []byte{CLASS_ALU<<4 | byte(op<<4|ins.Src.Index<<2|ins.Dst.Index)}, nil
	}
}

// binaryKind is a two operand ALU instruction, written as one of
// `op rS rD`, `rD op= rS` or `rD = rD op rS`.
func binaryKind(mnemonic string, op string, alu int) kindDef {
	return kindDef{
		parse: func(toks Tokens) (ins Instruction, ok bool) {
			switch {
			case toks.Match(mnemonic, TOKEN_REG, TOKEN_REG):
				ins = Instruction{Src: toks.Reg(1), Dst: toks.Reg(2)}
			case toks.Match(TOKEN_REG, op+"=", TOKEN_REG):
				ins = Instruction{Src: toks.Reg(2), Dst: toks.Reg(0)}
			case toks.Match(TOKEN_REG, "=", TOKEN_REG, op, TOKEN_REG):
				if toks.Reg(0).Index != toks.Reg(2).Index {
					return
				}
				ins = Instruction{Src: toks.Reg(4), Dst: toks.Reg(0), Dst2: toks.Reg(2), HasDst2: true}
			default:
				return
			}
			ok = true
			return
		},
		render: func(ins *Instruction, st style.Style) string {
			src := ins.Src.Render(st)
			dst := ins.Dst.Render(st)
			if !st.C() {
				return fmt.Sprintf("%s %v %v", mnemonic, src, dst)
			}
			if ins.HasDst2 {
				dst2 := ins.Dst2.Render(st)
				if dst2 != dst {
					return fmt.Sprintf("%v = %v %s %v", dst, dst2, op, src)
				}
			}
			return fmt.Sprintf("%v %s= %v", dst, op, src)
		},
		encode: aluEncode(alu),
	}
}

// shiftKind is a single bit shift, written as one of `op rS rD`,
// `rD =<< rS` or `rD = rS << 1`.
func shiftKind(mnemonic string, op string, alu int) kindDef {
	return kindDef{
		parse: func(toks Tokens) (ins Instruction, ok bool) {
			switch {
			case toks.Match(mnemonic, TOKEN_REG, TOKEN_REG):
				ins = Instruction{Src: toks.Reg(1), Dst: toks.Reg(2)}
			case toks.Match(TOKEN_REG, "="+op, TOKEN_REG):
				ins = Instruction{Src: toks.Reg(2), Dst: toks.Reg(0)}
			case toks.Match(TOKEN_REG, "=", TOKEN_REG, op, TOKEN_NUMBER):
				amount := toks.Lit(4)
				if amount.Kind != LITERAL_NUMBER || amount.Value != 1 {
					return
				}
				ins = Instruction{Src: toks.Reg(2), Dst: toks.Reg(0)}
			default:
				return
			}
			ok = true
			return
		},
		render: func(ins *Instruction, st style.Style) string {
			if st.C() {
				return fmt.Sprintf("%v = %v %s 1", ins.Dst.Render(st), ins.Src.Render(st), op)
			}
			return fmt.Sprintf("%s %v %v", mnemonic, ins.Src.Render(st), ins.Dst.Render(st))
		},
		encode: aluEncode(alu),
	}
}

// ParseInstruction returns the first instruction kind that accepts toks.
func ParseInstruction(toks Tokens) (ins Instruction, ok bool) {
	for kind := range Kind(KIND_COUNT) {
		ins, ok = kinds[kind].parse(toks)
		if ok {
			ins.Kind = kind
			return
		}
	}

	return
}

// Render returns the instruction spelled for st.
func (ins Instruction) Render(st style.Style) string {
	return kinds[ins.Kind].render(&ins, st)
}

// String returns the instruction in the default style.
func (ins Instruction) String() string {
	return ins.Render(style.Default())
}

// Size returns the number of bytes the instruction occupies when placed at
// offset.
func (ins Instruction) Size(offset int) (int, error) {
	size := kinds[ins.Kind].size
	if size == nil {
		return 1, nil
	}
	return size(&ins, offset)
}

// Encode appends the instruction bytes to out. On error out is returned
// unchanged.
func (ins Instruction) Encode(out []byte, labels map[string]int) ([]byte, error) {
	code, err := kinds[ins.Kind].encode(&ins, len(out), labels)
	if err != nil {
		return out, err
	}

	end := len(out) + len(code)
	if end > 0x100 {
		return out, ErrOverflow(end - 1)
	}

	return append(out, code...), nil
}

// Key returns the case folded label name of a KIND_LABEL instruction.
func (ins Instruction) Key() string {
	return strings.ToLower(ins.Label)
}
