package helper

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
)

// FlexInt accepts a JSON number or a numeric string. Older clients submit
// counts as strings ("45"); anything non-numeric is a hard error rather than
// being silently stored as zero.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		return fmt.Errorf("value must be a number")
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := sonic.Unmarshal(data, &str); err != nil {
			return err
		}
		s = strings.TrimSpace(str)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%q is not a valid number", s)
	}
	*f = FlexInt(n)
	return nil
}

func (f FlexInt) Int() int {
	return int(f)
}
