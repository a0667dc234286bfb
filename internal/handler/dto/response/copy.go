package response

import (
	"github.com/jinzhu/copier"
)

// copyView maps a read model onto a response DTO by field name. Views and
// DTOs share field types, so a failure means the two drifted apart.
func copyView[T any](from any) *T {
	to := new(T)
	if err := copier.Copy(to, from); err != nil {
		panic("response: copy view: " + err.Error())
	}
	return to
}

func copyViews[T any, V any](from []*V) []*T {
	out := make([]*T, len(from))
	for i, v := range from {
		out[i] = copyView[T](v)
	}
	return out
}
