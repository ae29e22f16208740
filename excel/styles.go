package excel

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/xuri/excelize/v2"
)

func cell(col rune, row int) string {
	return fmt.Sprintf("%c%d", col, row)
}

func defaultStyle() *excelize.Style {
	return &excelize.Style{
		// solid white
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#FFFFFF"},
			Pattern: 1,
		},
	}
}

func integerFormat() *excelize.Style {
	fmt := "#,##0"
	return &excelize.Style{
		CustomNumFmt: &fmt,
	}
}

func fontBold() *excelize.Style {
	return &excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
	}
}

func fontRed() *excelize.Style {
	return &excelize.Style{
		Font: &excelize.Font{
			Color: "#C00000",
		},
	}
}

func textAlignment(a string) *excelize.Style {
	return &excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: a,
		},
	}
}

func thinBorder(where ...string) *excelize.Style {
	s := &excelize.Style{}
	for _, w := range where {
		s.Border = append(s.Border, excelize.Border{
			Type:  w,
			Color: "#000000",
			Style: 1,
		})
	}
	return s
}

func mergeStyles(ext ...*excelize.Style) *excelize.Style {
	if len(ext) == 0 {
		return nil
	}
	for _, e := range ext[1:] {
		_ = mergo.Merge(ext[0], e, mergo.WithOverride)
	}
	return ext[0]
}

// styles caches the style ids used by a workbook.
type styles struct {
	header, text, number, negative int
}

func newStyles(xlsx *excelize.File) (*styles, error) {
	var s styles
	var err error
	if s.header, err = xlsx.NewStyle(mergeStyles(defaultStyle(), fontBold(), thinBorder("bottom"))); err != nil {
		return nil, err
	}
	if s.text, err = xlsx.NewStyle(defaultStyle()); err != nil {
		return nil, err
	}
	if s.number, err = xlsx.NewStyle(mergeStyles(defaultStyle(), integerFormat(), textAlignment("right"))); err != nil {
		return nil, err
	}
	if s.negative, err = xlsx.NewStyle(mergeStyles(defaultStyle(), integerFormat(), textAlignment("right"), fontRed())); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *styles) forAmount(v int64) int {
	if v < 0 {
		return s.negative
	}
	return s.number
}
