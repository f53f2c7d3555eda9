// Package dataset 列式数据集加载
//
// 支持两种格式:
//
//	CSV:  首行若含非数值单元格则视为列名, 各行列数须一致
//	JSON: 列对象 {"x":[...],"y":[...]} 或单列数值数组 [...]
//
// 加载时即拒绝 NaN/Inf, 下游计算只见有限值
package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sragli/mutual-information/errorx"
	"github.com/tidwall/gjson"
)

// Dataset 按列存储, Names 与 Cols 下标对应
type Dataset struct {
	Names []string
	Cols  [][]float64
}

// Load 按扩展名分发到对应加载器
func Load(path string) (*Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(path)
	case ".json":
		return LoadJSON(path)
	default:
		return nil, errorx.Newf(errorx.ErrBadData, "unsupported file type %q", filepath.Ext(path))
	}
}

// LoadCSV 读取 CSV 文件
// 列数不一致的行由 csv reader 直接报错
func LoadCSV(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return nil, errorx.Newf(errorx.ErrBadData, "parse %s: %v", path, err)
	}
	if len(rows) == 0 {
		return nil, errorx.Newf(errorx.ErrEmptyValue, "%s has no rows", path)
	}

	// 首行判定: 任一单元格解析失败即视为列名行
	names, start := headerOf(rows[0])
	if len(rows)-start == 0 {
		return nil, errorx.Newf(errorx.ErrEmptyValue, "%s has no data rows", path)
	}

	cols := make([][]float64, len(rows[0]))
	for j := range cols {
		cols[j] = make([]float64, 0, len(rows)-start)
	}
	for i := start; i < len(rows); i++ {
		for j, cell := range rows[i] {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, errorx.Newf(errorx.ErrBadData, "%s row %d column %q: %v", path, i+1, names[j], err)
			}
			if !isFinite(v) {
				return nil, errorx.Newf(errorx.ErrNonFinite, "%s row %d column %q: %v", path, i+1, names[j], v)
			}
			cols[j] = append(cols[j], v)
		}
	}
	return &Dataset{Names: names, Cols: cols}, nil
}

// headerOf 返回列名与数据起始行号, 无列名行则生成 col0..colN
func headerOf(first []string) ([]string, int) {
	numeric := true
	for _, cell := range first {
		if _, err := strconv.ParseFloat(strings.TrimSpace(cell), 64); err != nil {
			numeric = false
			break
		}
	}
	if numeric {
		names := make([]string, len(first))
		for j := range names {
			names[j] = fmt.Sprintf("col%d", j)
		}
		return names, 0
	}
	names := make([]string, len(first))
	for j, cell := range first {
		names[j] = strings.TrimSpace(cell)
	}
	return names, 1
}

// LoadJSON 读取 JSON 文件, 列名按字典序排列保证确定性
func LoadJSON(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(data) {
		return nil, errorx.Newf(errorx.ErrBadData, "%s is not valid json", path)
	}
	root := gjson.ParseBytes(data)

	switch {
	case root.IsObject():
		ds := &Dataset{}
		var ferr error
		root.ForEach(func(key, value gjson.Result) bool {
			col, err := numericArray(value)
			if err != nil {
				ferr = errors.WithMessagef(err, "%s column %q", path, key.String())
				return false
			}
			ds.Names = append(ds.Names, key.String())
			ds.Cols = append(ds.Cols, col)
			return true
		})
		if ferr != nil {
			return nil, ferr
		}
		if len(ds.Cols) == 0 {
			return nil, errorx.Newf(errorx.ErrEmptyValue, "%s has no columns", path)
		}
		sortByName(ds)
		return ds, nil

	case root.IsArray():
		col, err := numericArray(root)
		if err != nil {
			return nil, errors.WithMessage(err, path)
		}
		if len(col) == 0 {
			return nil, errorx.Newf(errorx.ErrEmptyValue, "%s has no values", path)
		}
		return &Dataset{Names: []string{"col0"}, Cols: [][]float64{col}}, nil

	default:
		return nil, errorx.Newf(errorx.ErrBadData, "%s: want object of arrays or array", path)
	}
}

func numericArray(value gjson.Result) ([]float64, error) {
	if !value.IsArray() {
		return nil, errorx.New(errorx.ErrBadData, "not an array")
	}
	elems := value.Array()
	col := make([]float64, 0, len(elems))
	for i, e := range elems {
		if e.Type != gjson.Number {
			return nil, errorx.Newf(errorx.ErrBadData, "element %d is %s, want number", i, e.Type)
		}
		v := e.Float()
		if !isFinite(v) {
			return nil, errorx.Newf(errorx.ErrNonFinite, "element %d: %v", i, v)
		}
		col = append(col, v)
	}
	return col, nil
}

func sortByName(ds *Dataset) {
	idx := make([]int, len(ds.Names))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return ds.Names[idx[a]] < ds.Names[idx[b]] })
	names := make([]string, len(idx))
	cols := make([][]float64, len(idx))
	for i, k := range idx {
		names[i] = ds.Names[k]
		cols[i] = ds.Cols[k]
	}
	ds.Names, ds.Cols = names, cols
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Column 按列名取列, 也接受 0 起始的列下标
func (d *Dataset) Column(key string) ([]float64, error) {
	for i, name := range d.Names {
		if name == key {
			return d.Cols[i], nil
		}
	}
	if j, err := strconv.Atoi(key); err == nil && j >= 0 && j < len(d.Cols) {
		return d.Cols[j], nil
	}
	return nil, errorx.Newf(errorx.ErrBadData, "no column %q (have %s)", key, strings.Join(d.Names, ", "))
}
