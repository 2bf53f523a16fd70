package proto

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"
)

// ErrMalformed reports a request Struct that does not have the expected shape.
var ErrMalformed = errors.New("malformed request")

// UploadRequest is the payload of PresignUpload and CompleteUpload.
type UploadRequest struct {
	Bucket   string
	Key      string
	Name     string
	FileType string
}

func NewSelectRequest(table string, columns []string) (*structpb.Struct, error) {
	cols := make([]any, 0, len(columns))
	for _, c := range columns {
		cols = append(cols, c)
	}
	return structpb.NewStruct(map[string]any{"table": table, "columns": cols})
}

func ParseSelectRequest(in *structpb.Struct) (string, []string, error) {
	table, err := stringField(in, "table")
	if err != nil {
		return "", nil, err
	}

	var columns []string
	if v, ok := in.GetFields()["columns"]; ok {
		list := v.GetListValue()
		if list == nil {
			return "", nil, fmt.Errorf("%w: columns must be a list", ErrMalformed)
		}
		for _, c := range list.GetValues() {
			s, ok := c.GetKind().(*structpb.Value_StringValue)
			if !ok {
				return "", nil, fmt.Errorf("%w: column names must be strings", ErrMalformed)
			}
			columns = append(columns, s.StringValue)
		}
	}
	return table, columns, nil
}

func NewInsertRequest(table string, row map[string]any) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{"table": table, "row": row})
}

func ParseInsertRequest(in *structpb.Struct) (string, map[string]any, error) {
	table, err := stringField(in, "table")
	if err != nil {
		return "", nil, err
	}
	row := in.GetFields()["row"].GetStructValue()
	if row == nil {
		return "", nil, fmt.Errorf("%w: row must be an object", ErrMalformed)
	}
	return table, row.AsMap(), nil
}

func NewUploadRequest(r UploadRequest) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"bucket":    r.Bucket,
		"key":       r.Key,
		"name":      r.Name,
		"file_type": r.FileType,
	})
}

// ParseUploadRequest requires bucket and key; name and file_type may be empty.
func ParseUploadRequest(in *structpb.Struct) (UploadRequest, error) {
	var r UploadRequest
	var err error
	if r.Bucket, err = stringField(in, "bucket"); err != nil {
		return r, err
	}
	if r.Key, err = stringField(in, "key"); err != nil {
		return r, err
	}
	r.Name = in.GetFields()["name"].GetStringValue()
	r.FileType = in.GetFields()["file_type"].GetStringValue()
	return r, nil
}

func RowsToList(rows []map[string]any) (*structpb.ListValue, error) {
	values := make([]*structpb.Value, 0, len(rows))
	for _, row := range rows {
		s, err := structpb.NewStruct(row)
		if err != nil {
			return nil, err
		}
		values = append(values, structpb.NewStructValue(s))
	}
	return &structpb.ListValue{Values: values}, nil
}

func ListToRows(list *structpb.ListValue) ([]map[string]any, error) {
	rows := make([]map[string]any, 0, len(list.GetValues()))
	for i, v := range list.GetValues() {
		s := v.GetStructValue()
		if s == nil {
			return nil, fmt.Errorf("%w: row %d is not an object", ErrMalformed, i)
		}
		rows = append(rows, s.AsMap())
	}
	return rows, nil
}

func stringField(in *structpb.Struct, name string) (string, error) {
	v, ok := in.GetFields()[name]
	if !ok {
		return "", fmt.Errorf("%w: missing %s", ErrMalformed, name)
	}
	s, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string", ErrMalformed, name)
	}
	return s.StringValue, nil
}
