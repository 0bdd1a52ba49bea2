package main

import (
	"errors"
	"strings"
)

// stringSlice is a repeatable string flag.
type stringSlice []string

func (s *stringSlice) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

func (s *stringSlice) Set(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errors.New("empty value")
	}
	for _, v := range *s {
		if v == value {
			return nil
		}
	}
	*s = append(*s, value)
	return nil
}
