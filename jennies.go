package opgen

import (
	"bytes"
	"path/filepath"
)

// OperatorsJenny writes every category into a single file at Path, with the
// same contents Emit produces.
type OperatorsJenny struct {
	Path string
}

var _ ManyToOne[Category] = OperatorsJenny{}

func (j OperatorsJenny) JennyName() string {
	return "OperatorsJenny"
}

func (j OperatorsJenny) Generate(cats ...Category) (*File, error) {
	if len(cats) == 0 {
		return nil, nil
	}
	var buf bytes.Buffer
	if err := Emit(&buf, cats...); err != nil {
		return nil, err
	}
	return &File{
		RelativePath: j.Path,
		Data:         buf.Bytes(),
	}, nil
}

// CategoryJenny writes each category into its own file under Dir, named from
// [Category.Slug] and Ext.
type CategoryJenny struct {
	Dir string
	Ext string
}

var _ OneToOne[Category] = CategoryJenny{}

func (j CategoryJenny) JennyName() string {
	return "CategoryJenny"
}

func (j CategoryJenny) Generate(c Category) (*File, error) {
	var buf bytes.Buffer
	if err := Emit(&buf, c); err != nil {
		return nil, err
	}
	return &File{
		RelativePath: filepath.Join(j.Dir, c.Slug()+j.Ext),
		Data:         buf.Bytes(),
	}, nil
}
