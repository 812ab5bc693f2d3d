package svd

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// Integer is an SVD scalar that may be written in decimal or 0x-prefixed hexadecimal.
type Integer int64

func parseInteger(v string) (Integer, error) {
	v = strings.TrimSpace(strings.ReplaceAll(v, "X", "x"))
	var (
		value int64
		err   error
	)
	if strings.HasPrefix(v, "0x") {
		var u uint64
		u, err = strconv.ParseUint(strings.TrimPrefix(v, "0x"), 16, 64)
		value = int64(u)
	} else {
		value, err = strconv.ParseInt(v, 10, 64)
	}
	return Integer(value), err
}

func (i *Integer) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var v string
	if err := d.DecodeElement(&v, &start); err != nil {
		return err
	}

	value, err := parseInteger(v)
	if err != nil {
		return err
	}
	*i = value
	return nil
}

func (i *Integer) UnmarshalXMLAttr(attr xml.Attr) error {
	value, err := parseInteger(attr.Value)
	if err != nil {
		return err
	}
	*i = value
	return nil
}
