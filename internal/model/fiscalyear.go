package model

import (
	"regexp"
	"strings"
)

// FiscalYear is a Bikram Sambat fiscal year label such as "2081/082".
type FiscalYear string

var fiscalYearPattern = regexp.MustCompile(`^\d{4}/\d{3}$`)

// Valid reports whether the label has the YYYY/YYY form.
func (fy FiscalYear) Valid() bool {
	return fiscalYearPattern.MatchString(string(fy))
}

// FileBase returns the label with the slash replaced for file names,
// e.g. "2081/082" -> "2081-082".
func (fy FiscalYear) FileBase() string {
	return strings.ReplaceAll(string(fy), "/", "-")
}

func (fy FiscalYear) String() string {
	return string(fy)
}

// ADLabel maps a fiscal year to its Gregorian span, e.g. "2024/25".
// Unknown years return the BS label unchanged.
func (fy FiscalYear) ADLabel() string {
	if ad, ok := fiscalYearAD[string(fy)]; ok {
		return ad
	}
	return string(fy)
}

var fiscalYearAD = map[string]string{
	"2071/072": "2014/15",
	"2072/073": "2015/16",
	"2073/074": "2016/17",
	"2074/075": "2017/18",
	"2075/076": "2018/19",
	"2076/077": "2019/20",
	"2077/078": "2020/21",
	"2078/079": "2021/22",
	"2079/080": "2022/23",
	"2080/081": "2023/24",
	"2081/082": "2024/25",
}
