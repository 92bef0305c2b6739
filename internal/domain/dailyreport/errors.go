package dailyreport

import "errors"

var ErrReportNotFound = errors.New("daily report not found")
