package generator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/exp/slices"
	"golang.org/x/tools/imports"

	"omibyte.io/clocktree/cmd/regen/svd"
)

var (
	ErrNoPeripherals   = errors.New("device describes no peripherals")
	ErrUnsupportedSize = errors.New("unsupported register size")
)

var identifierRegexp = regexp.MustCompile(`([a-zA-Z0-9]$|[a-zA-Z0-9][_a-zA-Z0-9]*[a-zA-Z0-9])`)

// Generator emits Bus-backed register accessors for the peripherals of one device.
type Generator struct {
	device  *svd.DeviceElement
	pkg     string
	only    []string
	methods map[string][]string
}

// New returns a generator for device that writes package pkg. When only is not empty just the
// named peripherals are emitted.
func New(device *svd.DeviceElement, pkg string, only ...string) *Generator {
	return &Generator{
		device:  device,
		pkg:     pkg,
		only:    only,
		methods: map[string][]string{},
	}
}

// Filename returns the name of the file Generate's output belongs in.
func (g *Generator) Filename() string {
	return strings.ToLower(g.device.Series) + ".go"
}

// WriteFile generates the accessors and writes them into dir.
func (g *Generator) WriteFile(dir string) (string, error) {
	buf, err := g.Generate()
	if err != nil {
		return "", err
	}

	fname := filepath.Join(dir, g.Filename())
	if err = os.WriteFile(fname, buf, 0644); err != nil {
		return "", err
	}
	return fname, nil
}

// Generate returns the formatted accessor source.
func (g *Generator) Generate() ([]byte, error) {
	var w strings.Builder

	g.writePreamble(&w)

	count := 0
	for _, periph := range g.device.Peripherals.Elements {
		if len(periph.DerivedFrom) > 0 {
			continue
		}
		if len(g.only) > 0 && !slices.Contains(g.only, periph.Name) {
			continue
		}
		if err := g.generatePeripheral(&w, periph); err != nil {
			return nil, fmt.Errorf("%s: %w", periph.Name, err)
		}
		count++
	}

	if count == 0 {
		return nil, ErrNoPeripherals
	}

	// Format the final output
	buf, err := imports.Process(g.Filename(), []byte(w.String()), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("error formatting %s: %v", g.Filename(), err)
	}
	return buf, nil
}

func (g *Generator) writePreamble(w *strings.Builder) {
	fmt.Fprintf(w, "// Code generated by regen from %s. DO NOT EDIT.\n\n", g.device.Name)
	fmt.Fprintf(w, "package %s\n\n", g.pkg)
}

func (g *Generator) generatePeripheral(w *strings.Builder, periph svd.PeripheralElement) error {
	name := cleanIdentifier(periph.Name)
	registers := slices.Clone(periph.Registers.RegisterElements)

	// Sort the registers
	sort.SliceStable(registers, func(i, j int) bool {
		return registers[i].AddressOffset < registers[j].AddressOffset
	})

	fmt.Fprintf(w, "// %s_BASE is the base address of the %s peripheral.\n", name, name)
	fmt.Fprintf(w, "const %s_BASE uintptr = %#x\n\n", name, periph.BaseAddress)

	fmt.Fprintf(w, "// %s_Type %s\n", name, periph.Description)
	fmt.Fprintf(w, "type %s_Type struct {\n", name)
	for _, register := range registers {
		registerName := cleanIdentifier(register.Name)
		fmt.Fprintf(w, "%s %s_%s\n", registerName, name, registerName)
	}
	fmt.Fprint(w, "}\n\n")

	fmt.Fprintf(w, "func new%s(bus Bus) *%s_Type {\n", name, name)
	fmt.Fprintf(w, "return &%s_Type{\n", name)
	for _, register := range registers {
		registerName := cleanIdentifier(register.Name)
		base, err := g.baseForSize(register.Size)
		if err != nil {
			return fmt.Errorf("%s: %w", registerName, err)
		}
		fmt.Fprintf(w, "%s: %s_%s{%s{bus, %s_BASE + %#x}},\n", registerName, name, registerName, base, name, register.AddressOffset)
	}
	fmt.Fprint(w, "}\n}\n\n")

	for _, register := range registers {
		if err := g.generateRegister(w, name, register); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) generateRegister(w *strings.Builder, prefix string, register svd.RegisterElement) error {
	typename := prefix + "_" + cleanIdentifier(register.Name)
	valueType := typename + "_REG"
	dataType := g.typeForSize(register.Size)
	base, err := g.baseForSize(register.Size)
	if err != nil {
		return err
	}

	access := register.Access
	if len(access) == 0 {
		// Use the default access level of the device if none set
		access = g.device.DefaultAccess
	}

	fmt.Fprintf(w, "// %s %s\n", typename, register.Description)
	fmt.Fprintf(w, "type %s struct{ %s }\n\n", typename, base)
	fmt.Fprintf(w, "// %s is a value of %s.\n", valueType, typename)
	fmt.Fprintf(w, "type %s %s\n\n", valueType, dataType)
	fmt.Fprintf(w, "// %s_RESET is the value of %s after reset.\n", typename, typename)
	fmt.Fprintf(w, "const %s_RESET %s = %#x\n\n", typename, valueType, register.ResetValue)

	fmt.Fprintf(w, "func (r %s) Load() %s {\nreturn %s(r.load())\n}\n\n", typename, valueType, valueType)
	if writable(access) {
		fmt.Fprintf(w, "func (r %s) Store(value %s) {\nr.store(%s(value))\n}\n\n", typename, valueType, dataType)
		fmt.Fprintf(w, "func (r %s) Modify(fn func(value *%s)) {\nvalue := r.Load()\nfn(&value)\nr.Store(value)\n}\n\n", typename, valueType)
	}

	// Create enumerated types
	evMap := map[string]string{}
	for _, field := range register.Fields.Elements {
		if len(field.EnumeratedValues.Elements) > 0 {
			fieldName := cleanIdentifier(field.Name)
			evMap[fieldName] = g.generateEnumeratedValues(w, valueType+"_"+fieldName, field.EnumeratedValues)
		}
	}

	// Create a setter/getter method for each field
	for _, field := range register.Fields.Elements {
		fieldName := cleanIdentifier(field.Name)
		fieldAccess := access
		if len(field.Access) > 0 {
			// Override the access level of the register if explicitly set on the field
			fieldAccess = field.Access
		}

		enumeratedType, hasEv := evMap[fieldName]
		fieldType := typeForBitWidth(field.BitWidth)
		if hasEv {
			fieldType = enumeratedType
		}
		mask := allSet(field.BitWidth)

		if readable(fieldAccess) && g.claim(valueType, "Get"+fieldName) {
			fmt.Fprintf(w, "func (v %s) Get%s() %s {\n", valueType, fieldName, fieldType)
			if field.BitWidth == 1 && !hasEv {
				fmt.Fprintf(w, "return v&(1<<%d) != 0\n", field.BitOffset)
			} else {
				fmt.Fprintf(w, "return %s((v >> %d) & %s)\n", fieldType, field.BitOffset, mask)
			}
			fmt.Fprint(w, "}\n\n")
		}

		if writable(fieldAccess) && g.claim(valueType, "Set"+fieldName) {
			fmt.Fprintf(w, "func (v *%s) Set%s(value %s) {\n", valueType, fieldName, fieldType)
			if field.BitWidth == 1 && !hasEv {
				fmt.Fprintf(w, "if value {\n*v |= 1 << %d\n} else {\n*v &^= 1 << %d\n}\n", field.BitOffset, field.BitOffset)
			} else {
				fmt.Fprintf(w, "*v = *v&^(%s<<%d) | %s(value)&%s<<%d\n", mask, field.BitOffset, valueType, mask, field.BitOffset)
			}
			fmt.Fprint(w, "}\n\n")
		}
	}
	return nil
}

func (g *Generator) generateEnumeratedValues(w *strings.Builder, typename string, ev svd.EnumeratedValuesElement) string {
	fmt.Fprintf(w, "type %s uint32\n\n", typename)
	fmt.Fprintln(w, "const (")
	for _, value := range ev.Elements {
		fmt.Fprintf(w, "%s_%s %s = %#x\n", typename, cleanIdentifier(value.Name), typename, value.Value)
	}
	fmt.Fprint(w, ")\n\n")
	return typename
}

// claim records method on typename and reports whether it was not already present.
func (g *Generator) claim(typename, method string) bool {
	if slices.Contains(g.methods[typename], method) {
		return false
	}
	g.methods[typename] = append(g.methods[typename], method)
	return true
}

func (g *Generator) typeForSize(size svd.Integer) string {
	switch {
	case size <= 8:
		return "uint8"
	case size <= 16:
		return "uint16"
	case size <= 32:
		return "uint32"
	default:
		return g.typeForSize(g.device.RegisterSize)
	}
}

func (g *Generator) baseForSize(size svd.Integer) (string, error) {
	switch size {
	case 8:
		return "reg8", nil
	case 16:
		return "reg16", nil
	case 32:
		return "reg32", nil
	default:
		return "", fmt.Errorf("%w: %d", ErrUnsupportedSize, size)
	}
}

func readable(access string) bool {
	return access == "read-only" || access == "read-write" || access == "read-writeOnce"
}

func writable(access string) bool {
	return access == "write-only" || access == "read-write" || access == "writeOnce"
}

func typeForBitWidth(width svd.Integer) string {
	if width > 16 {
		return "uint32"
	} else if width > 8 {
		return "uint16"
	} else if width > 1 {
		return "uint8"
	} else {
		return "bool"
	}
}

func allSet(bits svd.Integer) (result string) {
	for i := svd.Integer(0); i < bits; i++ {
		result += "1"
	}
	result = "0b" + result
	return
}

func cleanIdentifier(ident string) string {
	cleanStr := identifierRegexp.FindStringSubmatch(ident)
	return cleanStr[0]
}
