// Package svd decodes the subset of a CMSIS System View Description that regen needs to emit
// register accessors: peripherals, their registers and the bit fields within them.
package svd

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

type DeviceElement struct {
	Name          string             `xml:"name"`
	Series        string             `xml:"series"`
	CPU           CPUElement         `xml:"cpu"`
	RegisterSize  Integer            `xml:"size"`
	DefaultAccess string             `xml:"access"`
	Peripherals   PeripheralsElement `xml:"peripherals"`
}

type CPUElement struct {
	Name   string `xml:"name"`
	Endian string `xml:"endian"`
}

type PeripheralsElement struct {
	Elements []PeripheralElement `xml:"peripheral"`
}

type PeripheralElement struct {
	Name        string           `xml:"name"`
	Description string           `xml:"description"`
	BaseAddress Integer          `xml:"baseAddress"`
	Registers   RegistersElement `xml:"registers"`
	DerivedFrom string           `xml:"derivedFrom,attr"`
}

type RegistersElement struct {
	RegisterElements []RegisterElement `xml:"register"`
}

// RegisterElement is one memory mapped register. Indirect GCLK registers appear once even
// though the hardware multiplexes them by id.
type RegisterElement struct {
	Name          string        `xml:"name"`
	Description   string        `xml:"description"`
	AddressOffset Integer       `xml:"addressOffset"`
	Size          Integer       `xml:"size"`
	Access        string        `xml:"access"`
	ResetValue    Integer       `xml:"resetValue"`
	Fields        FieldElements `xml:"fields"`
}

type FieldElements struct {
	Elements []FieldElement `xml:"field"`
}

type FieldElement struct {
	Name             string                  `xml:"name"`
	Description      string                  `xml:"description"`
	BitOffset        Integer                 `xml:"bitOffset"`
	BitWidth         Integer                 `xml:"bitWidth"`
	Access           string                  `xml:"access"`
	EnumeratedValues EnumeratedValuesElement `xml:"enumeratedValues"`
}

type EnumeratedValuesElement struct {
	Elements []EnumeratedValueElement `xml:"enumeratedValue"`
}

type EnumeratedValueElement struct {
	Name        string  `xml:"name"`
	Description string  `xml:"description"`
	Value       Integer `xml:"value"`
}

// Decode reads a device description from r.
func Decode(r io.Reader) (*DeviceElement, error) {
	var device DeviceElement
	if err := xml.NewDecoder(r).Decode(&device); err != nil {
		return nil, fmt.Errorf("xml decode error: %w", err)
	}
	return &device, nil
}

// ReadFile decodes the device description stored in fname.
func ReadFile(fname string) (*DeviceElement, error) {
	file, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Decode(file)
}
