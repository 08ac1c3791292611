package version

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFullVersion(t *testing.T) {
	assert.Equal(t, "dev (commit: unknown, built: unknown)", GetFullVersion())
}

func TestCollector_BuildInfo(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(Collector("jobportal_auth_test")))

	count, err := testutil.GatherAndCount(reg, "jobportal_auth_test_build_info")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)

	var labels []string
	for _, l := range families[0].GetMetric()[0].GetLabel() {
		labels = append(labels, l.GetName()+"="+l.GetValue())
	}
	assert.Contains(t, strings.Join(labels, ","), "version=dev")
}
