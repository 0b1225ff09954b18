// Code generated by hand. DO NOT EDIT.

package suppress

import "test/dsl"

func generated() {
	dsl.Start().Add(1)
}
