// Licensed to the LF AI & Data foundation under one
// or more contributor license agreements. See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership. The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License. You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	// skipdefaultNamespace 是当前项目所有 Prometheus 指标使用的命名空间。
	skipdefaultNamespace = "skipdefault"

	codecSubsystem = "codec"

	formatLabelName = "format"
	opLabelName     = "op"
	statusLabelName = "status"

	OpEncode = "encode"
	OpDecode = "decode"

	StatusSuccess = "success"
	StatusFail    = "fail"
)

var (
	// payloadBuckets 为文本大小的桶划分，单位为字节。
	// 实际桶分布为：[2 4 8 16 32 64 128 256 512 1024 2048 4096]
	payloadBuckets = prometheus.ExponentialBuckets(2, 2, 12)

	CodecOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: skipdefaultNamespace,
			Subsystem: codecSubsystem,
			Name:      "operations_total",
			Help:      "Record 编解码次数，按格式、操作与结果划分",
		}, []string{formatLabelName, opLabelName, statusLabelName})

	CodecPayloadBytes = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: skipdefaultNamespace,
			Subsystem: codecSubsystem,
			Name:      "payload_bytes",
			Help:      "成功编解码的文本大小",
			Buckets:   payloadBuckets,
		}, []string{formatLabelName, opLabelName})

	metricRegisterer prometheus.Registerer
	registerOnce     sync.Once
)

// GetRegisterer 返回全局 Prometheus Registerer。
// 如果尚未通过 Register 显式设置，则返回 prometheus.DefaultRegisterer。
func GetRegisterer() prometheus.Registerer {
	if metricRegisterer == nil {
		return prometheus.DefaultRegisterer
	}
	return metricRegisterer
}

// Register 注册当前定义的所有指标，重复调用只生效一次。
func Register(r prometheus.Registerer) {
	registerOnce.Do(func() {
		r.MustRegister(CodecOperations)
		r.MustRegister(CodecPayloadBytes)
		metricRegisterer = r
	})
}

// ObserveCodec 记录一次编解码的结果。size 仅在成功时计入直方图。
func ObserveCodec(format, op string, size int, err error) {
	if err != nil {
		CodecOperations.WithLabelValues(format, op, StatusFail).Inc()
		return
	}
	CodecOperations.WithLabelValues(format, op, StatusSuccess).Inc()
	CodecPayloadBytes.WithLabelValues(format, op).Observe(float64(size))
}
