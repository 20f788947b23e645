package models

import "gorm.io/datatypes"

func toJSONSlice(items []string) datatypes.JSONSlice[string] {
	if items == nil {
		return datatypes.JSONSlice[string]{}
	}
	return datatypes.JSONSlice[string](items)
}

func fromJSONSlice(items datatypes.JSONSlice[string]) []string {
	out := make([]string, len(items))
	copy(out, items)
	return out
}
