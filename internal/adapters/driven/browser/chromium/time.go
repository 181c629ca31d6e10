package chromium

// Chromium stores timestamps as microseconds since the Windows epoch
// (1601-01-01 UTC), not the Unix epoch. The offset between the two epochs
// is 11644473600 seconds.
const windowsEpochOffsetMicros int64 = 11644473600 * 1000 * 1000

// webkitToUnixMillis converts a Chromium timestamp to epoch milliseconds.
// Zero (never visited) stays zero.
func webkitToUnixMillis(webkitMicros int64) int64 {
	if webkitMicros <= 0 {
		return 0
	}
	return (webkitMicros - windowsEpochOffsetMicros) / 1000
}

// unixMillisToWebkit converts epoch milliseconds to a Chromium timestamp.
func unixMillisToWebkit(millis int64) int64 {
	if millis <= 0 {
		return 0
	}
	return millis*1000 + windowsEpochOffsetMicros
}
