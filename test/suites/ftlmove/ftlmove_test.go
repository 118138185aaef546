package test_test

import (
	"errors"

	"github.com/golang/mock/gomock"
	"github.com/loopcontext/ftlmove"
	"github.com/loopcontext/ftlmove/test"
	mock_ftlmove "github.com/loopcontext/ftlmove/test/mock"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

const commonFTL = `### Shared strings

## Buttons

# Confirms the dialog
common-ok = OK
common-cancel = Cancel
-common-brand = Acme
    .gender = neuter
common-items = { $count ->
    [one] One item
   *[other] { $count } items
}

## Errors

common-error = Something went wrong with { -common-brand }.
`

var _ = Describe("Migrator", func() {
	var (
		tree     *test.Tree
		ctrl     *gomock.Controller
		reporter *mock_ftlmove.MockReporter
	)

	BeforeEach(func() {
		var err error
		tree, err = test.NewTree()
		Expect(err).NotTo(HaveOccurred())
		ctrl = gomock.NewController(GinkgoT())
		reporter = mock_ftlmove.NewMockReporter(ctrl)
	})

	AfterEach(func() {
		ctrl.Finish()
		Expect(tree.Remove()).To(Succeed())
	})

	newMigrator := func(cfg ftlmove.Config) *ftlmove.Migrator {
		cfg.BaseDir = tree.Base
		cfg.KeysFile = tree.Path("keys.txt")
		cfg.Reporter = reporter
		m, err := ftlmove.NewMigrator(cfg)
		Expect(err).NotTo(HaveOccurred())
		return m
	}

	Context("with a multi-language tree", func() {
		BeforeEach(func() {
			Expect(tree.Write(commonFTL, "en", "common.ftl")).To(Succeed())
			Expect(tree.Write(commonFTL, "fr", "common.ftl")).To(Succeed())
			Expect(tree.Write("dialog-title = Title\n", "fr", "dialog.ftl")).To(Succeed())
			Expect(tree.Write("unrelated = Text\n", "pl", "other.ftl")).To(Succeed())
			Expect(tree.Write("common-ok\ncommon-items\n-common-brand\n", "keys.txt")).To(Succeed())
		})

		It("should move and rename selected entries in every language folder", func() {
			pl := tree.Path("pl")
			gomock.InOrder(
				reporter.EXPECT().OnProcess(tree.Path("en", "common.ftl")),
				reporter.EXPECT().OnRename("common-ok", "dialog-ok"),
				reporter.EXPECT().OnRename("common-brand", "dialog-brand"),
				reporter.EXPECT().OnRename("common-items", "dialog-items"),
				reporter.EXPECT().OnMoved(3, tree.Path("en", "dialog.ftl")),
				reporter.EXPECT().OnSourceUpdated(tree.Path("en", "common.ftl")),
				reporter.EXPECT().OnProcess(tree.Path("fr", "common.ftl")),
				reporter.EXPECT().OnRename(gomock.Any(), gomock.Any()).Times(3),
				reporter.EXPECT().OnMoved(3, tree.Path("fr", "dialog.ftl")),
				reporter.EXPECT().OnSourceUpdated(tree.Path("fr", "common.ftl")),
				reporter.EXPECT().OnSkip(pl, gomock.Any()),
			)

			stats, err := newMigrator(ftlmove.Config{DestinationFilename: "dialog.ftl", Rename: true}).Run()
			Expect(err).NotTo(HaveOccurred())
			Expect(stats).To(Equal(ftlmove.Stats{Directories: 3, Processed: 2, Skipped: 1, KeysMoved: 6, KeysRenamed: 6}))

			source, err := tree.Read("en", "common.ftl")
			Expect(err).NotTo(HaveOccurred())
			Expect(source).To(Equal("### Shared strings\n\n## Buttons\ncommon-cancel = Cancel\n\n## Errors\ncommon-error = Something went wrong with { -common-brand }.\n"))

			destination, err := tree.Read("en", "dialog.ftl")
			Expect(err).NotTo(HaveOccurred())
			Expect(destination).To(Equal("# Confirms the dialog\ndialog-ok = OK\n-dialog-brand = Acme\n    .gender = neuter\ndialog-items = { $count ->\n    [one] One item\n   *[other] { $count } items\n}\n"))

			frDestination, err := tree.Read("fr", "dialog.ftl")
			Expect(err).NotTo(HaveOccurred())
			Expect(frDestination).To(HavePrefix("dialog-title = Title\n\n# Confirms the dialog\ndialog-ok = OK\n"))

			Expect(tree.Exists("pl", "dialog.ftl")).To(BeFalse())
			other, err := tree.Read("pl", "other.ftl")
			Expect(err).NotTo(HaveOccurred())
			Expect(other).To(Equal("unrelated = Text\n"))
		})

		It("should report the skipped folder with a skippable error", func() {
			reporter.EXPECT().OnProcess(gomock.Any()).Times(2)
			reporter.EXPECT().OnMoved(gomock.Any(), gomock.Any()).Times(2)
			reporter.EXPECT().OnSourceUpdated(gomock.Any()).Times(2)
			reporter.EXPECT().OnSkip(tree.Path("pl"), gomock.Any()).Do(func(dir string, err error) {
				Expect(ftlmove.IsSkippable(err)).To(BeTrue())
				Expect(err.Error()).To(ContainSubstring("'common.ftl' not found"))
			})

			_, err := newMigrator(ftlmove.Config{}).Run()
			Expect(err).NotTo(HaveOccurred())
		})

		It("should be a no-op the second time", func() {
			reporter.EXPECT().OnProcess(gomock.Any()).AnyTimes()
			reporter.EXPECT().OnMoved(gomock.Any(), gomock.Any()).Times(2)
			reporter.EXPECT().OnSourceUpdated(gomock.Any()).AnyTimes()
			reporter.EXPECT().OnSkip(gomock.Any(), gomock.Any()).AnyTimes()
			reporter.EXPECT().OnNothingMoved(tree.Path("en", "common.ftl"))
			reporter.EXPECT().OnNothingMoved(tree.Path("fr", "common.ftl"))

			_, err := newMigrator(ftlmove.Config{}).Run()
			Expect(err).NotTo(HaveOccurred())
			first, err := tree.Read("en", "new_component.ftl")
			Expect(err).NotTo(HaveOccurred())

			stats, err := newMigrator(ftlmove.Config{}).Run()
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.KeysMoved).To(Equal(0))
			second, err := tree.Read("en", "new_component.ftl")
			Expect(err).NotTo(HaveOccurred())
			Expect(second).To(Equal(first))
		})

		It("should only touch folders matching the language filter", func() {
			reporter.EXPECT().OnProcess(tree.Path("fr", "common.ftl"))
			reporter.EXPECT().OnMoved(3, tree.Path("fr", "new_component.ftl"))
			reporter.EXPECT().OnSourceUpdated(tree.Path("fr", "common.ftl"))

			stats, err := newMigrator(ftlmove.Config{Languages: ftlmove.Patterns{"f*"}}).Run()
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.Directories).To(Equal(1))
			Expect(tree.Exists("en", "new_component.ftl")).To(BeFalse())
		})
	})

	Context("with an empty key list", func() {
		It("should notify and stop", func() {
			Expect(tree.Write(commonFTL, "en", "common.ftl")).To(Succeed())
			Expect(tree.Write("\n   \n", "keys.txt")).To(Succeed())
			reporter.EXPECT().OnNoKeys()

			stats, err := newMigrator(ftlmove.Config{}).Run()
			Expect(err).NotTo(HaveOccurred())
			Expect(stats).To(Equal(ftlmove.Stats{}))
			source, err := tree.Read("en", "common.ftl")
			Expect(err).NotTo(HaveOccurred())
			Expect(source).To(Equal(commonFTL))
		})
	})

	Context("without language folders", func() {
		It("should fail with a config error", func() {
			Expect(tree.Write("common-ok\n", "keys.txt")).To(Succeed())

			_, err := newMigrator(ftlmove.Config{}).Run()
			Expect(err).To(HaveOccurred())
			Expect(ftlmove.IsConfigError(err)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("no language directories found"))
		})
	})

	Context("without a key list file", func() {
		It("should fail with a config error before scanning folders", func() {
			Expect(tree.Write(commonFTL, "en", "common.ftl")).To(Succeed())

			_, err := newMigrator(ftlmove.Config{}).Run()
			Expect(ftlmove.IsConfigError(err)).To(BeTrue())
			var me ftlmove.Error
			Expect(errors.As(err, &me)).To(BeTrue())
			Expect(me.Path()).To(Equal(tree.Path("keys.txt")))
		})
	})
})
