package e2e

import (
	"encoding/json"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gopkg.in/yaml.v3"

	"github.com/darkroomkit/easelcalc/api/v1alpha1"
)

var _ = Describe("easelcalc CLI", func() {
	Context("calc", func() {
		It("should lay out a 3:2 print on landscape 8x10", func() {
			out, err := runCLI("calc", "--paper", "8x10", "--landscape", "--ratio", "3:2", "-o", "json")
			Expect(err).NotTo(HaveOccurred())

			var bc v1alpha1.BorderCalculator
			Expect(json.Unmarshal([]byte(out), &bc)).To(Succeed())
			Expect(bc.Status.Print.Width).To(BeNumerically("~", 9, 1e-9))
			Expect(bc.Status.Print.Height).To(BeNumerically("~", 6, 1e-9))
			Expect(bc.Status.Borders).To(Equal(v1alpha1.Edges{Left: 0.5, Right: 0.5, Top: 1, Bottom: 1}))
			Expect(bc.Status.Easel.Name).To(Equal("8x10"))
			Expect(bc.Status.Warnings).To(BeEmpty())
		})

		It("should read a request document and keep its name", func() {
			path := filepath.Join(GinkgoT().TempDir(), "request.yaml")
			Expect(os.WriteFile(path, []byte(`
apiVersion: easelcalc.darkroomkit.io/v1alpha1
kind: BorderCalculator
name: roll-12-frame-5
spec:
  paper: {width: 11, height: 14}
  ratio: {width: 1, height: 1}
  minBorder: 1
  offset:
    horizontal: 0.5
    vertical: 0
`), 0o600)).To(Succeed())

			out, err := runCLI("calc", "-f", path)
			Expect(err).NotTo(HaveOccurred())

			var bc v1alpha1.BorderCalculator
			Expect(yaml.Unmarshal([]byte(out), &bc)).To(Succeed())
			Expect(bc.Name).To(Equal("roll-12-frame-5"))
			Expect(bc.Status.Print).To(Equal(v1alpha1.Dimensions{Width: 9, Height: 9}))
			Expect(bc.Status.Offset.Horizontal).To(Equal(0.0))
			Expect(bc.Status.Warnings).To(ConsistOf("Offset adjusted to honour min-border"))
		})

		It("should fail on a paper size it cannot parse", func() {
			_, err := runCLI("calc", "--paper", "large")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("invalid format"))
		})
	})

	Context("fit", func() {
		It("should put 11x14 paper straight into its own easel", func() {
			out, err := runCLI("fit", "-p", "11x14", "-o", "json")
			Expect(err).NotTo(HaveOccurred())

			var got struct {
				Easel v1alpha1.EaselStatus `json:"easel"`
			}
			Expect(json.Unmarshal([]byte(out), &got)).To(Succeed())
			Expect(got.Easel.Name).To(Equal("11x14"))
			Expect(got.Easel.NonStandard).To(BeFalse())
			Expect(got.Easel.Slot).To(Equal(v1alpha1.Dimensions{Width: 11, Height: 14}))
		})

		It("should treat oversize paper as its own easel", func() {
			out, err := runCLI("fit", "-p", "30x40", "-o", "json")
			Expect(err).NotTo(HaveOccurred())

			var got struct {
				Easel v1alpha1.EaselStatus `json:"easel"`
			}
			Expect(json.Unmarshal([]byte(out), &got)).To(Succeed())
			Expect(got.Easel.Name).To(BeEmpty())
			Expect(got.Easel.NonStandard).To(BeTrue())
			Expect(got.Easel.Slot).To(Equal(v1alpha1.Dimensions{Width: 30, Height: 40}))
		})
	})

	Context("optimize", func() {
		It("should stay inside the search window", func() {
			out, err := runCLI("optimize", "-p", "8x10", "-b", "0.5", "-o", "json")
			Expect(err).NotTo(HaveOccurred())

			var got struct {
				Suggested float64 `json:"suggested"`
				WindowLo  float64 `json:"windowLo"`
				WindowHi  float64 `json:"windowHi"`
				Found     bool    `json:"found"`
			}
			Expect(json.Unmarshal([]byte(out), &got)).To(Succeed())
			Expect(got.Found).To(BeTrue())
			Expect(got.Suggested).To(BeNumerically(">=", got.WindowLo))
			Expect(got.Suggested).To(BeNumerically("<=", got.WindowHi))
		})
	})

	Context("configuration", func() {
		It("should honour environment overrides", func() {
			GinkgoT().Setenv("EASELCALC_ENGINE_SNAPUNIT", "-1")
			_, err := runCLI("easels")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("snapUnit must be > 0"))
		})

		It("should dump metrics after the result", func() {
			out, err := runCLI("calc", "--dump-metrics")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("easelcalc_border_optimizer_searches_total 1"))
			Expect(out).To(ContainSubstring("easelcalc_fit_cache_misses_total 1"))
		})
	})
})
