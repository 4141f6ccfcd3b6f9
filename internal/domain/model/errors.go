package model

import "fmt"

// GeometryParseError WKT文字列の解析に失敗したことを表すエラー
// どのレコードで失敗したかを呼び出し側に伝え、スキップか中断かの判断を委ねる
type GeometryParseError struct {
	Name string
	WKT  string
	Err  error
}

func (e *GeometryParseError) Error() string {
	return fmt.Sprintf("ジオメトリの解析失敗 (%s): %v", e.Name, e.Err)
}

func (e *GeometryParseError) Unwrap() error {
	return e.Err
}

// NoGeometryError 利用可能なジオメトリが1つも無く、地図の中心を決定できないことを表すエラー
type NoGeometryError struct{}

func (e *NoGeometryError) Error() string {
	return "利用可能なジオメトリが存在しないため、地図の中心を決定できません"
}
