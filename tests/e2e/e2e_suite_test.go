/*
 * Copyright (c) 2024, NVIDIA CORPORATION.  All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package e2e

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gexec"
	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/device-query/internal/pkg/deviceinfo"
	"github.com/NVIDIA/device-query/internal/pkg/fakeprovider"
	"github.com/NVIDIA/device-query/tests/e2e/internal/framework"
)

const (
	exitTimeout = 30 * time.Second

	rule = "--------------------------------------------------------------------------------"
)

func sectionHeader(index int) string {
	return fmt.Sprintf("device#%s%d\n", strings.Repeat(" ", 34-len("device#")), index)
}

func fixture(name string) string {
	path, err := framework.ResolvePath(filepath.Join(testContext.fixtures, name))
	Expect(err).ShouldNot(HaveOccurred())
	return path
}

var _ = Describe("device-query-e2e-suite", func() {
	When("device-query runs against the fake backend", Ordered, func() {
		var deviceQuery *framework.DeviceQuery

		BeforeAll(func() {
			var err error
			deviceQuery, err = framework.NewDeviceQuery(testContext.binary)
			Expect(err).ShouldNot(HaveOccurred(), "cannot prepare the device-query binary")
			_, _ = fmt.Fprintf(GinkgoWriter, "Run %s uses %q\n", runID, testContext.fixtures)
		})

		AfterAll(func() {
			if deviceQuery != nil {
				deviceQuery.Cleanup()
			}
		})

		run := func(expectedExitCode int, args ...string) *gexec.Session {
			session, err := deviceQuery.Start(GinkgoWriter, args...)
			Expect(err).ShouldNot(HaveOccurred())
			Eventually(session).WithTimeout(exitTimeout).Should(gexec.Exit(expectedExitCode))
			return session
		}

		It("should report every device with its peers", func() {
			session := run(0, "--backend", "fake", "--fixture", fixture("two_devices.yaml"))
			out := string(session.Out.Contents())

			lines := strings.Split(out, "\n")
			Expect(lines[0]).Should(HavePrefix("compiler: gc version=go"))
			Expect(lines[0]).Should(HaveSuffix(", runtime: fake driver=550.54.15"))
			Expect(lines[1]).Should(BeEmpty())
			Expect(lines[2]).Should(Equal(rule))

			Expect(strings.Count(out, rule)).Should(Equal(2))
			Expect(strings.Index(out, sectionHeader(0))).Should(BeNumerically("<", strings.Index(out, sectionHeader(1))))
			Expect(out).Should(ContainSubstring("non-peers:                        device#1 \n"))
			Expect(out).Should(ContainSubstring("peers:                            device#0 \n"))
			Expect(out).Should(ContainSubstring("\n\nmemInfo.total:                    8.00 GB\n"))
			Expect(out).Should(HaveSuffix("memInfo.free:                     2.00 GB (25%)\n"))
		})

		It("should print only the identification line when there are no devices", func() {
			session := run(0, "--backend", "fake", "--fixture", fixture("no_devices.yaml"))
			out := string(session.Out.Contents())

			Expect(strings.Count(out, "\n")).Should(Equal(1))
			Expect(out).Should(HavePrefix("compiler: "))
		})

		It("should keep earlier sections and fail on the first runtime error", func() {
			session := run(1, "--backend", "fake", "--fixture", fixture("failing_device.yaml"))
			out := string(session.Out.Contents())

			Expect(out).Should(ContainSubstring(sectionHeader(0)))
			Expect(out).ShouldNot(ContainSubstring(sectionHeader(1)))
			Expect(out).ShouldNot(ContainSubstring(sectionHeader(2)))

			errOut := string(session.Err.Contents())
			Expect(errOut).Should(ContainSubstring("error: 'out of memory'(2) at enumerator.go:"))
			Expect(errOut).Should(ContainSubstring("in GetDeviceProperties"))
		})

		It("should retry the initialization of the runtime", func() {
			run(0, "--backend", "fake", "--fixture", fixture("flaky_init.yaml"), "--init-attempts", "3")
			session := run(1, "--backend", "fake", "--fixture", fixture("flaky_init.yaml"), "--init-attempts", "1")
			Expect(string(session.Err.Contents())).Should(ContainSubstring("driver not loaded"))
		})

		It("should read its configuration from the environment", func() {
			session, err := deviceQuery.
				WithEnv("DEVICE_QUERY_BACKEND=fake", "DEVICE_QUERY_FIXTURE="+fixture("two_devices.yaml"),
					"DEVICE_QUERY_DEVICES=1").
				Start(GinkgoWriter)
			Expect(err).ShouldNot(HaveOccurred())
			Eventually(session).WithTimeout(exitTimeout).Should(gexec.Exit(0))

			out := string(session.Out.Contents())
			Expect(out).ShouldNot(ContainSubstring(sectionHeader(0)))
			Expect(out).Should(ContainSubstring(sectionHeader(1)))
		})

		It("should emit a JSON report", func() {
			session := run(0, "--backend", "fake", "--fixture", fixture("two_devices.yaml"), "--format", "json")

			var report map[string]any
			Expect(json.Unmarshal(session.Out.Contents(), &report)).Should(Succeed())
			Expect(report).Should(HaveKey("header"))
			Expect(report["devices"]).Should(HaveLen(2))
		})

		It("should emit a YAML report for the selected devices", func() {
			session := run(0, "--backend", "fake", "--fixture", fixture("two_devices.yaml"),
				"--format", "yaml", "--devices", "0")

			var report struct {
				Devices []struct {
					Device     int                     `yaml:"device"`
					Properties deviceinfo.Properties   `yaml:"properties"`
					Memory     deviceinfo.MemoryStatus `yaml:"memInfo"`
				} `yaml:"devices"`
			}
			Expect(yaml.Unmarshal(session.Out.Contents(), &report)).Should(Succeed())
			Expect(report.Devices).Should(HaveLen(1))
			Expect(report.Devices[0].Device).Should(Equal(0))
			Expect(report.Devices[0].Properties.Arch.Has(deviceinfo.HasDynamicParallelism)).Should(BeTrue())
			Expect(report.Devices[0].Memory.FreePercent()).Should(BeNumerically("==", 25))
		})

		It("should compute peers across a fully connected host", func() {
			const count = 4
			f := fakeprovider.Fixture{DriverVersion: runID.String()}
			for i := 0; i < count; i++ {
				device := fakeprovider.Device{
					Properties: deviceinfo.Properties{Name: fmt.Sprintf("GPU %d", i)},
					Memory:     deviceinfo.MemoryStatus{Free: 1 << 30, Total: 4 << 30},
				}
				for peer := 0; peer < count; peer++ {
					if peer != i {
						device.PeerAccess = append(device.PeerAccess, peer)
					}
				}
				f.Devices = append(f.Devices, device)
			}

			data, err := yaml.Marshal(f)
			Expect(err).ShouldNot(HaveOccurred())
			path := filepath.Join(GinkgoT().TempDir(), runID.String()+".yaml")
			Expect(os.WriteFile(path, data, 0o600)).Should(Succeed())

			session := run(0, "--backend", "fake", "--fixture", path)
			out := string(session.Out.Contents())

			Expect(out).Should(ContainSubstring(" driver=" + runID.String()))
			Expect(out).Should(ContainSubstring("peers:                            device#1 device#2 device#3 \n"))
			Expect(out).Should(ContainSubstring("peers:                            device#0 device#1 device#2 \n"))
			Expect(strings.Count(out, "non-peers:                        \n")).Should(Equal(count))
			Expect(out).Should(ContainSubstring("memInfo.free:                     1.00 GB (25%)\n"))
		})

		It("should reject an unknown format", func() {
			session := run(1, "--backend", "fake", "--fixture", fixture("two_devices.yaml"), "--format", "xml")
			Expect(session.Out.Contents()).Should(BeEmpty())
		})
	})
})
