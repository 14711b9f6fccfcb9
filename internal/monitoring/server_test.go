package monitoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "0.0 MB", formatBytes(0))
	assert.Equal(t, "512.0 MB", formatBytes(512*1024*1024))
	assert.Equal(t, "1.0 GB", formatBytes(1024*1024*1024))
	assert.Equal(t, "2.5 GB", formatBytes(2*1024*1024*1024+512*1024*1024))
}

func TestFormatUptime(t *testing.T) {
	assert.Equal(t, "0m", formatUptime(0))
	assert.Equal(t, "45m", formatUptime(45*60))
	assert.Equal(t, "3h 20m", formatUptime(3*3600+20*60))
	assert.Equal(t, "2d 5h", formatUptime(2*86400+5*3600))
}
