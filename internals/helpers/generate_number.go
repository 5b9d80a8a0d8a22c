package helper

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

// Generated document numbers (admission, receipt, employee). Uniqueness is
// enforced by the DB indexes; these only have to be collision-unlikely.

func GenerateAdmissionNumber(year int) string {
	return fmt.Sprintf("ADM%d%s", year, lastDigits(6))
}

func GenerateReceiptNumber() string {
	return fmt.Sprintf("REC%s%02d", lastDigits(8), rand.Intn(100))
}

func GenerateEmployeeID(year int) string {
	return fmt.Sprintf("EMP%d%s", year, lastDigits(5))
}

func lastDigits(n int) string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 10)
	if len(ts) <= n {
		return ts
	}
	return ts[len(ts)-n:]
}
