package tui

import (
	stderrors "errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/joe/filescan/internal/tui/shared"
	"github.com/joe/filescan/pkg/collection"
	"github.com/joe/filescan/pkg/fileentry"
	"github.com/joe/filescan/pkg/filesystem"
)

var _ = Describe("Model", func() {
	var (
		mock    *filesystem.MockFileSystem
		results *collection.Collection
		scans   int
		model   Model
	)

	BeforeEach(func() {
		mock = filesystem.NewMockFileSystem()
		mock.AddFile("/data/alpha.txt", []byte("first line\nsecond line\n"), time.Now().Add(-3*time.Hour))
		mock.AddFile("/data/beta.log", []byte("beta"), time.Now())
		mock.AddFile("/data/gamma.md", []byte("# gamma"), time.Now())

		results = collection.New()
		for _, p := range []string{"/data/alpha.txt", "/data/beta.log", "/data/gamma.md"} {
			results.Append(fileentry.NewWithFileSystem(mock, p))
		}

		scans = 0
		model = NewModel("/data", func() (*collection.Collection, error) {
			scans++
			return results, nil
		})
	})

	update := func(msg tea.Msg) (Model, tea.Cmd) {
		next, cmd := model.Update(msg)
		return next.(Model), cmd
	}

	Describe("Scanning", func() {
		It("starts in the scanning phase", func() {
			Expect(model.Phase()).To(Equal(PhaseScanning))
			Expect(model.View()).To(ContainSubstring("Scanning /data"))
		})

		It("runs the scan from the start command", func() {
			msg := model.startScan()()

			Expect(scans).To(Equal(1))
			complete, ok := msg.(shared.ScanCompleteMsg)
			Expect(ok).To(BeTrue())
			Expect(complete.Entries.Len()).To(Equal(3))
		})

		It("reports scan failures as an error message", func() {
			model = NewModel("/data", func() (*collection.Collection, error) {
				return nil, stderrors.New("connection refused")
			})

			msg := model.startScan()()

			Expect(msg).To(BeAssignableToTypeOf(shared.ErrorMsg{}))
		})
	})

	Describe("Results", func() {
		BeforeEach(func() {
			model, _ = update(tea.WindowSizeMsg{Width: 120, Height: 30})
			model, _ = update(shared.ScanCompleteMsg{Entries: results, Elapsed: time.Second})
		})

		It("lists every entry", func() {
			Expect(model.Phase()).To(Equal(PhaseResults))

			view := model.View()
			Expect(view).To(ContainSubstring("alpha.txt"))
			Expect(view).To(ContainSubstring("beta.log"))
			Expect(view).To(ContainSubstring("gamma.md"))
			Expect(view).To(ContainSubstring("3 matches"))
		})

		It("previews the selected file", func() {
			Expect(model.View()).To(ContainSubstring("first line"))
		})

		It("shows how long ago the selected file changed", func() {
			Expect(model.View()).To(ContainSubstring("3 hours ago"))
		})

		It("moves the selection with the arrow keys", func() {
			model, _ = update(tea.KeyMsg{Type: tea.KeyDown})
			Expect(model.Cursor()).To(Equal(1))
			Expect(model.View()).To(ContainSubstring("beta"))

			model, _ = update(tea.KeyMsg{Type: tea.KeyUp})
			Expect(model.Cursor()).To(Equal(0))
		})

		It("keeps the selection inside the list", func() {
			model, _ = update(tea.KeyMsg{Type: tea.KeyUp})
			Expect(model.Cursor()).To(Equal(0))

			for range 10 {
				model, _ = update(tea.KeyMsg{Type: tea.KeyDown})
			}
			Expect(model.Cursor()).To(Equal(2))
		})

		It("jumps to the ends", func() {
			model, _ = update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
			Expect(model.Cursor()).To(Equal(2))

			model, _ = update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
			Expect(model.Cursor()).To(Equal(0))
		})

		It("shows removed files as errors in the preview", func() {
			Expect(mock.Remove("/data/beta.log")).To(Succeed())

			model, _ = update(tea.KeyMsg{Type: tea.KeyDown})

			Expect(model.View()).To(ContainSubstring("✗"))
		})

		It("rescans on r", func() {
			var cmd tea.Cmd
			model, cmd = update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})

			Expect(model.Phase()).To(Equal(PhaseScanning))
			Expect(cmd).NotTo(BeNil())
		})

		It("quits on q", func() {
			_, cmd := update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

			Expect(cmd).NotTo(BeNil())
			Expect(cmd()).To(Equal(tea.QuitMsg{}))
		})
	})

	Describe("Empty results", func() {
		It("says nothing matched", func() {
			model, _ = update(shared.ScanCompleteMsg{Entries: collection.New()})

			Expect(model.View()).To(ContainSubstring("No matching files."))
			Expect(model.View()).To(ContainSubstring("0 matches"))
		})

		It("ignores navigation", func() {
			model, _ = update(shared.ScanCompleteMsg{Entries: collection.New()})
			model, _ = update(tea.KeyMsg{Type: tea.KeyDown})

			Expect(model.Cursor()).To(Equal(0))
		})
	})

	Describe("Errors", func() {
		It("shows the failure with suggestions", func() {
			model, _ = update(shared.ErrorMsg{Err: stderrors.New("open /data: permission denied")})

			Expect(model.Phase()).To(Equal(PhaseError))
			Expect(model.View()).To(ContainSubstring("permission denied"))
		})
	})

	Describe("Phase names", func() {
		It("names every phase", func() {
			Expect(PhaseScanning.String()).To(Equal("scanning"))
			Expect(PhaseResults.String()).To(Equal("results"))
			Expect(PhaseError.String()).To(Equal("error"))
			Expect(Phase(42).String()).To(Equal("unknown"))
		})
	})
})
