package controller

// BatchDelay mengekspor batchDelay untuk pengujian eksternal.
const BatchDelay = batchDelay
